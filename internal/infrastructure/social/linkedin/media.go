package linkedin

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
)

type (
	registerUploadRequest struct {
		RegisterUploadRequest registerUploadBody `json:"registerUploadRequest"`
	}

	registerUploadBody struct {
		Recipes              []string              `json:"recipes"`
		Owner                string                `json:"owner"`
		ServiceRelationships []serviceRelationship `json:"serviceRelationships"`
	}

	serviceRelationship struct {
		RelationshipType string `json:"relationshipType"`
		Identifier       string `json:"identifier"`
	}

	registerUploadResponse struct {
		Value struct {
			UploadMechanism struct {
				MediaUploadHTTPRequest struct {
					UploadURL string `json:"uploadUrl"`
				} `json:"com.linkedin.digitalmedia.uploading.MediaUploadHttpRequest"`
			} `json:"uploadMechanism"`
			Asset string `json:"asset"`
		} `json:"value"`
	}
)

// uploadImage registers an upload slot, pushes the image bytes into it,
// and returns the asset URN to attach to the post.
func (p *Publisher) uploadImage(ctx context.Context, author string, image models.ImagePayload) (string, error) {
	data, err := p.materializeImage(ctx, image)
	if err != nil {
		return "", fmt.Errorf("materializing image: %w", err)
	}

	uploadURL, assetURN, err := p.registerUpload(ctx, author)
	if err != nil {
		return "", fmt.Errorf("registering upload: %w", err)
	}

	if err := p.putImage(ctx, uploadURL, data); err != nil {
		return "", fmt.Errorf("uploading image bytes: %w", err)
	}

	logger.Debug(ctx, "image uploaded", "asset", assetURN, "size", len(data))
	return assetURN, nil
}

// materializeImage turns an image payload into raw bytes. URL payloads
// are fetched; the base64 forms are decoded locally.
func (p *Publisher) materializeImage(ctx context.Context, image models.ImagePayload) ([]byte, error) {
	switch image.Kind {
	case models.ImageKindURL:
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, image.URL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := p.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn(ctx, "failed to close response body", "error", err)
			}
		}()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)

	case models.ImageKindDataURI, models.ImageKindBase64:
		data, err := base64.StdEncoding.DecodeString(image.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding image data: %w", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("unknown image payload kind %d", image.Kind)
	}
}

// registerUpload asks the assets API for an upload slot owned by the
// posting member.
func (p *Publisher) registerUpload(ctx context.Context, author string) (uploadURL, assetURN string, err error) {
	payload := registerUploadRequest{
		RegisterUploadRequest: registerUploadBody{
			Recipes: []string{"urn:li:digitalmediaRecipe:feedshare-image"},
			Owner:   author,
			ServiceRelationships: []serviceRelationship{
				{
					RelationshipType: "OWNER",
					Identifier:       "urn:li:userGeneratedContent",
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	resp, respBody, err := p.doJSON(ctx, http.MethodPost, p.baseURL+"/assets?action=registerUpload", body)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("register upload returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed registerUploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", "", fmt.Errorf("decoding register upload response: %w", err)
	}

	uploadURL = parsed.Value.UploadMechanism.MediaUploadHTTPRequest.UploadURL
	assetURN = parsed.Value.Asset
	if uploadURL == "" || assetURN == "" {
		return "", "", fmt.Errorf("register upload response missing uploadUrl or asset")
	}
	return uploadURL, assetURN, nil
}

// putImage sends the raw bytes to the upload slot.
func (p *Publisher) putImage(ctx context.Context, uploadURL string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("image upload returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
