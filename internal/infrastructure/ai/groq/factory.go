package groq

import (
	"context"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
)

// Factory registers the Groq provider.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreatePostGenerator(_ context.Context, cfg *config.Config) (ports.PostGenerator, error) {
	return NewPostGenerator(cfg)
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.AI.GroqAPIKey == "" {
		return domainerrors.NewConfigError("ai.groq_api_key", "GROQ_API_KEY is required for the groq provider", nil)
	}
	return nil
}

func (f *Factory) Name() string {
	return config.ProviderGroq
}
