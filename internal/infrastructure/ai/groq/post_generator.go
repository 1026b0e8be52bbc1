package groq

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai"
)

// defaultBaseURL is Groq's OpenAI-compatible endpoint.
const defaultBaseURL = "https://api.groq.com/openai/v1"

var _ ports.PostGenerator = (*PostGenerator)(nil)

// PostGenerator produces post text through Groq's chat completion API.
type PostGenerator struct {
	client   openai.Client
	model    string
	language string
}

// NewPostGenerator builds a Groq-backed post generator.
func NewPostGenerator(cfg *config.Config) (*PostGenerator, error) {
	return newPostGenerator(cfg, defaultBaseURL)
}

// newPostGenerator allows tests to point the client at a local server.
func newPostGenerator(cfg *config.Config, baseURL string) (*PostGenerator, error) {
	if cfg.AI.GroqAPIKey == "" {
		return nil, domainerrors.NewConfigError("ai.groq_api_key", "GROQ_API_KEY is required for the groq provider", nil)
	}

	model := cfg.AI.Model
	if model == "" {
		model = config.DefaultGroqModel
	}

	return &PostGenerator{
		client: openai.NewClient(
			option.WithAPIKey(cfg.AI.GroqAPIKey),
			option.WithBaseURL(baseURL),
		),
		model:    model,
		language: cfg.Language,
	}, nil
}

// GeneratePost implements ports.PostGenerator.
func (g *PostGenerator) GeneratePost(ctx context.Context, commitSummary string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(ai.PostSystemPrompt),
			openai.UserMessage(ai.BuildPostPrompt(g.language, commitSummary)),
		},
	})
	if err != nil {
		return "", domainerrors.NewGenerationError("groq", "generating post", err)
	}

	if len(resp.Choices) == 0 {
		return "", domainerrors.NewGenerationError("groq", "empty response from model", nil)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", domainerrors.NewGenerationError("groq", "empty response from model", nil)
	}

	return text, nil
}
