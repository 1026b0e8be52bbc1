package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/httpclient"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
)

const (
	defaultBaseURL = "https://api.linkedin.com/v2"

	// restliProtocolVersion is required on every REST call.
	restliProtocolVersion = "2.0.0"

	mediaCategoryImage = "IMAGE"
	mediaCategoryNone  = "NONE"
)

var _ ports.Publisher = (*Publisher)(nil)

// Publisher submits posts through the LinkedIn UGC API. The author URN
// is resolved once per instance and reused across calls.
type Publisher struct {
	client  httpclient.HTTPClient
	cfg     config.LinkedInConfig
	baseURL string
	author  string
}

// NewPublisher builds a LinkedIn publisher from configuration.
func NewPublisher(cfg *config.Config, client httpclient.HTTPClient) *Publisher {
	return &Publisher{
		client:  client,
		cfg:     cfg.LinkedIn,
		baseURL: defaultBaseURL,
	}
}

type (
	shareText struct {
		Text string `json:"text"`
	}

	shareMedia struct {
		Status string `json:"status"`
		Media  string `json:"media"`
	}

	shareContent struct {
		ShareCommentary    shareText    `json:"shareCommentary"`
		ShareMediaCategory string       `json:"shareMediaCategory"`
		Media              []shareMedia `json:"media,omitempty"`
	}

	ugcPostRequest struct {
		Author          string `json:"author"`
		LifecycleState  string `json:"lifecycleState"`
		SpecificContent struct {
			ShareContent shareContent `json:"com.linkedin.ugc.ShareContent"`
		} `json:"specificContent"`
		Visibility struct {
			MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
		} `json:"visibility"`
	}

	ugcPostResponse struct {
		ID string `json:"id"`
	}
)

// Publish implements ports.Publisher. The image upload is best effort:
// when it fails the post falls back to text-only rather than aborting.
func (p *Publisher) Publish(ctx context.Context, post models.Post) (models.PublishReceipt, error) {
	author, err := p.ResolveAuthor(ctx)
	if err != nil {
		return models.PublishReceipt{}, err
	}

	assetURN := ""
	if post.Image != nil {
		assetURN, err = p.uploadImage(ctx, author, *post.Image)
		if err != nil {
			logger.Warn(ctx, "image upload failed, posting text only", "error", err)
			assetURN = ""
		}
	}

	payload := ugcPostRequest{
		Author:         author,
		LifecycleState: "PUBLISHED",
	}
	payload.Visibility.MemberNetworkVisibility = "PUBLIC"
	payload.SpecificContent.ShareContent = shareContent{
		ShareCommentary:    shareText{Text: post.Text},
		ShareMediaCategory: mediaCategoryNone,
	}
	if assetURN != "" {
		payload.SpecificContent.ShareContent.ShareMediaCategory = mediaCategoryImage
		payload.SpecificContent.ShareContent.Media = []shareMedia{
			{Status: "READY", Media: assetURN},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.PublishReceipt{}, fmt.Errorf("encoding post payload: %w", err)
	}

	resp, respBody, err := p.doJSON(ctx, http.MethodPost, p.baseURL+"/ugcPosts", body)
	if err != nil {
		return models.PublishReceipt{}, domainerrors.NewNetworkError("linkedin", "submitting post", err)
	}
	if resp.StatusCode != http.StatusCreated {
		logger.Error(ctx, "post submission rejected", nil,
			"status", resp.StatusCode,
			"body", string(respBody))
		return models.PublishReceipt{}, domainerrors.NewPublishError(resp.StatusCode, string(respBody), nil)
	}

	var parsed ugcPostResponse
	_ = json.Unmarshal(respBody, &parsed)

	receipt := models.PublishReceipt{
		ID:            parsed.ID,
		MediaCategory: payload.SpecificContent.ShareContent.ShareMediaCategory,
	}
	return receipt, nil
}

// doJSON sends an authenticated JSON request and returns the response
// with its fully-read body.
func (p *Publisher) doJSON(ctx context.Context, method, url string, body []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.AccessToken)
	req.Header.Set("X-Restli-Protocol-Version", restliProtocolVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "failed to close response body", "error", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, respBody, nil
}
