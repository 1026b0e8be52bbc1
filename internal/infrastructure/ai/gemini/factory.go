package gemini

import (
	"context"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
)

// Factory registers the Gemini provider.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreatePostGenerator(ctx context.Context, cfg *config.Config) (ports.PostGenerator, error) {
	return NewPostGenerator(ctx, cfg)
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.AI.GeminiAPIKey == "" {
		return domainerrors.NewConfigError("ai.gemini_api_key", "GEMINI_API_KEY is required for the gemini provider", nil)
	}
	return nil
}

func (f *Factory) Name() string {
	return config.ProviderGemini
}
