package linkedin

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeJWT builds an unsigned JWT with the given payload JSON.
func fakeJWT(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func TestResolveAuthor(t *testing.T) {
	t.Run("should prefer the configured urn", func(t *testing.T) {
		client := &MockHTTPClient{}
		pub := NewPublisher(linkedinConfig("urn:li:person:abc"), client)

		author, err := pub.ResolveAuthor(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "urn:li:person:abc", author)
		client.AssertNotCalled(t, "Do", mock.Anything)
	})

	t.Run("should normalize a bare member id", func(t *testing.T) {
		pub := NewPublisher(linkedinConfig("abc"), &MockHTTPClient{})

		author, err := pub.ResolveAuthor(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "urn:li:person:abc", author)
	})

	t.Run("should look up the profile when no urn is configured", func(t *testing.T) {
		client := &MockHTTPClient{}
		pub := NewPublisher(linkedinConfig(""), client)

		client.On("Do", mock.MatchedBy(pathMatcher(http.MethodGet, "/me"))).
			Return(httpResponse(http.StatusOK, `{"id":"member42"}`), nil).Once()

		author, err := pub.ResolveAuthor(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "urn:li:person:member42", author)

		// Second call is served from the memoized value.
		author, err = pub.ResolveAuthor(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "urn:li:person:member42", author)
		client.AssertNumberOfCalls(t, "Do", 1)
	})

	t.Run("should fall back to the id_token when the profile is forbidden", func(t *testing.T) {
		client := &MockHTTPClient{}
		cfg := &config.Config{
			LinkedIn: config.LinkedInConfig{
				AccessToken: "test-token",
				IDToken:     fakeJWT(`{"sub":"member99"}`),
			},
		}
		pub := NewPublisher(cfg, client)

		client.On("Do", mock.MatchedBy(pathMatcher(http.MethodGet, "/me"))).
			Return(httpResponse(http.StatusForbidden, `{"message":"not permitted"}`), nil)

		author, err := pub.ResolveAuthor(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "urn:li:person:member99", author)
	})

	t.Run("should fail with AuthError when every source is exhausted", func(t *testing.T) {
		client := &MockHTTPClient{}
		pub := NewPublisher(linkedinConfig(""), client)

		client.On("Do", mock.MatchedBy(pathMatcher(http.MethodGet, "/me"))).
			Return(httpResponse(http.StatusForbidden, `{"message":"not permitted"}`), nil)

		_, err := pub.ResolveAuthor(context.Background())

		var authErr *domainerrors.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "linkedin", authErr.Service)
		assert.Contains(t, authErr.Message, "PERSON_URN")
	})

	t.Run("should reject an id_token without a sub claim", func(t *testing.T) {
		client := &MockHTTPClient{}
		cfg := &config.Config{
			LinkedIn: config.LinkedInConfig{
				AccessToken: "test-token",
				IDToken:     fakeJWT(`{"aud":"someone"}`),
			},
		}
		pub := NewPublisher(cfg, client)

		client.On("Do", mock.MatchedBy(pathMatcher(http.MethodGet, "/me"))).
			Return(httpResponse(http.StatusForbidden, `{}`), nil)

		_, err := pub.ResolveAuthor(context.Background())

		var authErr *domainerrors.AuthError
		assert.ErrorAs(t, err, &authErr)
	})
}
