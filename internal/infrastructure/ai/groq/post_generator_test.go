package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groqConfig() *config.Config {
	return &config.Config{
		Language: "en",
		AI: config.AIConfig{
			Provider:   config.ProviderGroq,
			GroqAPIKey: "test-key",
		},
	}
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   config.DefaultGroqModel,
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestNewPostGenerator(t *testing.T) {
	t.Run("should fail without an api key", func(t *testing.T) {
		_, err := NewPostGenerator(&config.Config{})

		var cfgErr *domainerrors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "ai.groq_api_key", cfgErr.Field)
	})

	t.Run("should default the model", func(t *testing.T) {
		gen, err := NewPostGenerator(groqConfig())

		require.NoError(t, err)
		assert.Equal(t, config.DefaultGroqModel, gen.model)
	})
}

func TestGeneratePost(t *testing.T) {
	t.Run("should return the completion text", func(t *testing.T) {
		var gotPath, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(completionResponse("Shipped a new parser today! 🚀"))
		}))
		defer server.Close()

		gen, err := newPostGenerator(groqConfig(), server.URL)
		require.NoError(t, err)

		post, err := gen.GeneratePost(context.Background(), "Commit #1: octocat/widgets")

		require.NoError(t, err)
		assert.Equal(t, "Shipped a new parser today! 🚀", post)
		assert.Equal(t, "/chat/completions", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
	})

	t.Run("should wrap API failures in GenerationError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"message":"model not found"}}`, http.StatusBadRequest)
		}))
		defer server.Close()

		gen, err := newPostGenerator(groqConfig(), server.URL)
		require.NoError(t, err)

		_, err = gen.GeneratePost(context.Background(), "summary")

		var genErr *domainerrors.GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "groq", genErr.Provider)
	})

	t.Run("should reject an empty completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(completionResponse("   "))
		}))
		defer server.Close()

		gen, err := newPostGenerator(groqConfig(), server.URL)
		require.NoError(t, err)

		_, err = gen.GeneratePost(context.Background(), "summary")

		var genErr *domainerrors.GenerationError
		assert.ErrorAs(t, err, &genErr)
	})
}
