package imagen

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if resp, ok := args.Get(0).(*http.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func imagenConfig() *config.Config {
	return &config.Config{
		Imagen: config.ImagenConfig{APIKey: "test-key"},
	}
}

func TestGenerateImage(t *testing.T) {
	t.Run("should produce a data payload from a prediction", func(t *testing.T) {
		client := &MockHTTPClient{}
		gen := NewGenerator(imagenConfig(), client)

		client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			return req.Method == http.MethodPost &&
				req.Header.Get("x-goog-api-key") == "test-key" &&
				req.URL.Path == "/v1beta/models/"+config.DefaultImagenModel+":predict"
		})).Return(httpResponse(http.StatusOK, `{"predictions":[{"bytesBase64Encoded":"aW1hZ2U=","mimeType":"image/jpeg"}]}`), nil)

		result := gen.GenerateImage(context.Background(), "Shipped a parser today!")

		require.True(t, result.HasImage())
		assert.Equal(t, "aW1hZ2U=", result.Payload.Data)
		assert.Equal(t, "image/jpeg", result.Payload.MIMEType)
	})

	t.Run("should degrade when no api key is configured", func(t *testing.T) {
		client := &MockHTTPClient{}
		gen := NewGenerator(&config.Config{}, client)

		result := gen.GenerateImage(context.Background(), "post")

		assert.False(t, result.HasImage())
		assert.Contains(t, result.Reason, "IMAGEN_API_KEY")
		client.AssertNotCalled(t, "Do", mock.Anything)
	})

	t.Run("should degrade on a billing rejection", func(t *testing.T) {
		client := &MockHTTPClient{}
		gen := NewGenerator(imagenConfig(), client)

		client.On("Do", mock.Anything).
			Return(httpResponse(http.StatusBadRequest, `{"error":{"message":"Imagen API is only accessible to billed users at this time."}}`), nil)

		result := gen.GenerateImage(context.Background(), "post")

		assert.False(t, result.HasImage())
		assert.Contains(t, result.Reason, "billed account")
	})

	t.Run("should degrade on other API errors", func(t *testing.T) {
		client := &MockHTTPClient{}
		gen := NewGenerator(imagenConfig(), client)

		client.On("Do", mock.Anything).
			Return(httpResponse(http.StatusInternalServerError, `{"error":{"message":"internal"}}`), nil)

		result := gen.GenerateImage(context.Background(), "post")

		assert.False(t, result.HasImage())
		assert.Contains(t, result.Reason, "status 500")
	})

	t.Run("should degrade on transport failures", func(t *testing.T) {
		client := &MockHTTPClient{}
		gen := NewGenerator(imagenConfig(), client)

		client.On("Do", mock.Anything).Return(nil, assert.AnError)

		result := gen.GenerateImage(context.Background(), "post")

		assert.False(t, result.HasImage())
		assert.Contains(t, result.Reason, "calling image API")
	})

	t.Run("should degrade when the response has no predictions", func(t *testing.T) {
		client := &MockHTTPClient{}
		gen := NewGenerator(imagenConfig(), client)

		client.On("Do", mock.Anything).
			Return(httpResponse(http.StatusOK, `{"predictions":[]}`), nil)

		result := gen.GenerateImage(context.Background(), "post")

		assert.False(t, result.HasImage())
		assert.Contains(t, result.Reason, "no predictions")
	})

	t.Run("should degrade when the prediction has no image bytes", func(t *testing.T) {
		client := &MockHTTPClient{}
		gen := NewGenerator(imagenConfig(), client)

		client.On("Do", mock.Anything).
			Return(httpResponse(http.StatusOK, `{"predictions":[{"mimeType":"image/png"}]}`), nil)

		result := gen.GenerateImage(context.Background(), "post")

		assert.False(t, result.HasImage())
		assert.Contains(t, result.Reason, "without image bytes")
	})
}
