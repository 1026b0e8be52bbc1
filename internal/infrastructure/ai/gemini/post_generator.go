package gemini

import (
	"context"
	"strings"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai"
	"google.golang.org/genai"
)

var _ ports.PostGenerator = (*PostGenerator)(nil)

// PostGenerator produces post text through the Gemini API.
type PostGenerator struct {
	client   *genai.Client
	model    string
	language string
}

// NewPostGenerator builds a Gemini-backed post generator.
func NewPostGenerator(ctx context.Context, cfg *config.Config) (*PostGenerator, error) {
	if cfg.AI.GeminiAPIKey == "" {
		return nil, domainerrors.NewConfigError("ai.gemini_api_key", "GEMINI_API_KEY is required for the gemini provider", nil)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, domainerrors.NewGenerationError("gemini", "creating client", err)
	}

	model := cfg.AI.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}

	return &PostGenerator{
		client:   client,
		model:    model,
		language: cfg.Language,
	}, nil
}

// GeneratePost implements ports.PostGenerator.
func (g *PostGenerator) GeneratePost(ctx context.Context, commitSummary string) (string, error) {
	prompt := ai.BuildPostPrompt(g.language, commitSummary)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: ai.PostSystemPrompt}},
		},
	})
	if err != nil {
		return "", domainerrors.NewGenerationError("gemini", "generating post", err)
	}

	text := collectText(resp)
	if text == "" {
		return "", domainerrors.NewGenerationError("gemini", "empty response from model", nil)
	}

	return text, nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		break
	}
	return strings.TrimSpace(sb.String())
}
