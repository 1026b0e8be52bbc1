package gemini

import (
	"context"
	"testing"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewPostGenerator(t *testing.T) {
	t.Run("should fail without an api key", func(t *testing.T) {
		cfg := &config.Config{AI: config.AIConfig{Provider: config.ProviderGemini}}

		_, err := NewPostGenerator(context.Background(), cfg)

		var cfgErr *domainerrors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "ai.gemini_api_key", cfgErr.Field)
	})
}

func TestFactory(t *testing.T) {
	t.Run("should report its provider name", func(t *testing.T) {
		assert.Equal(t, "gemini", NewFactory().Name())
	})

	t.Run("should validate the api key", func(t *testing.T) {
		factory := NewFactory()

		err := factory.ValidateConfig(&config.Config{})
		assert.Error(t, err)

		err = factory.ValidateConfig(&config.Config{AI: config.AIConfig{GeminiAPIKey: "key"}})
		assert.NoError(t, err)
	})
}

func TestCollectText(t *testing.T) {
	t.Run("should concatenate the first candidate's parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []*genai.Part{{Text: "Shipped "}, {Text: "a parser today."}},
					},
				},
				{
					Content: &genai.Content{
						Parts: []*genai.Part{{Text: "ignored alternative"}},
					},
				},
			},
		}

		assert.Equal(t, "Shipped a parser today.", collectText(resp))
	})

	t.Run("should return empty for nil or empty responses", func(t *testing.T) {
		assert.Empty(t, collectText(nil))
		assert.Empty(t, collectText(&genai.GenerateContentResponse{}))
		assert.Empty(t, collectText(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: nil}},
		}))
	})
}
