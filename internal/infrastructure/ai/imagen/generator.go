package imagen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/httpclient"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var _ ports.ImageGenerator = (*Generator)(nil)

type (
	// Generator produces post illustrations through the Imagen predict
	// API. Every failure degrades to a no-image result; the post must
	// still go out when the image backend is down or unpaid.
	Generator struct {
		client  httpclient.HTTPClient
		apiKey  string
		model   string
		baseURL string
	}

	predictRequest struct {
		Instances  []predictInstance `json:"instances"`
		Parameters predictParameters `json:"parameters"`
	}

	predictInstance struct {
		Prompt string `json:"prompt"`
	}

	predictParameters struct {
		SampleCount       int    `json:"sampleCount"`
		AspectRatio       string `json:"aspectRatio"`
		SafetyFilterLevel string `json:"safetyFilterLevel"`
		PersonGeneration  string `json:"personGeneration"`
	}

	predictResponse struct {
		Predictions []prediction `json:"predictions"`
	}

	prediction struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
	}

	apiErrorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
)

// NewGenerator builds an Imagen-backed image generator.
func NewGenerator(cfg *config.Config, client httpclient.HTTPClient) *Generator {
	model := cfg.Imagen.Model
	if model == "" {
		model = config.DefaultImagenModel
	}
	return &Generator{
		client:  client,
		apiKey:  cfg.Imagen.APIKey,
		model:   model,
		baseURL: defaultBaseURL,
	}
}

// GenerateImage implements ports.ImageGenerator.
func (g *Generator) GenerateImage(ctx context.Context, postText string) models.ImageResult {
	if g.apiKey == "" {
		return models.ImageDegraded("image generation not configured, IMAGEN_API_KEY is missing")
	}

	body, err := json.Marshal(predictRequest{
		Instances: []predictInstance{{Prompt: ai.BuildVisualPrompt(postText)}},
		Parameters: predictParameters{
			SampleCount:       1,
			AspectRatio:       "1:1",
			SafetyFilterLevel: "block_some",
			PersonGeneration:  "allow_all",
		},
	})
	if err != nil {
		return models.ImageDegraded(fmt.Sprintf("encoding predict request: %v", err))
	}

	url := fmt.Sprintf("%s/models/%s:predict", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.ImageDegraded(fmt.Sprintf("building predict request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return models.ImageDegraded(fmt.Sprintf("calling image API: %v", err))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "failed to close response body", "error", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ImageDegraded(fmt.Sprintf("reading image API response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return g.degradeForStatus(resp.StatusCode, respBody)
	}

	var parsed predictResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return models.ImageDegraded(fmt.Sprintf("decoding image API response: %v", err))
	}
	if len(parsed.Predictions) == 0 {
		return models.ImageDegraded("image API returned no predictions")
	}

	pred := parsed.Predictions[0]
	if pred.BytesBase64Encoded == "" {
		return models.ImageDegraded("image API returned a prediction without image bytes")
	}

	mimeType := pred.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	// The predict API hands back bare base64; wrap it as a data URI and
	// let the boundary resolver classify it like any other raw image.
	raw := fmt.Sprintf("data:%s;base64,%s", mimeType, pred.BytesBase64Encoded)
	return models.ImageProduced(models.ResolveImagePayload(raw))
}

// degradeForStatus distinguishes the expected billing rejection from
// other API failures; Imagen requires a billed project and free-tier
// keys get a 400 back.
func (g *Generator) degradeForStatus(status int, body []byte) models.ImageResult {
	var apiErr apiErrorResponse
	_ = json.Unmarshal(body, &apiErr)
	message := apiErr.Error.Message

	if status == http.StatusBadRequest {
		lower := strings.ToLower(message)
		if strings.Contains(lower, "billed users") || strings.Contains(lower, "billing") {
			return models.ImageDegraded("image API requires a billed account, posting without image")
		}
	}

	if message == "" {
		message = string(body)
	}
	return models.ImageDegraded(fmt.Sprintf("image API returned status %d: %s", status, message))
}
