package linkedin

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
)

const personURNPrefix = "urn:li:person:"

type (
	meResponse struct {
		ID string `json:"id"`
	}

	idTokenClaims struct {
		Sub string `json:"sub"`
	}
)

// ResolveAuthor implements ports.Publisher. Resolution order: the
// configured URN, then the /me profile endpoint, then the OpenID
// id_token subject. Tokens with only the w_member_social scope get a
// 403 from /me, which is why the id_token fallback exists.
func (p *Publisher) ResolveAuthor(ctx context.Context) (string, error) {
	if p.author != "" {
		return p.author, nil
	}

	if p.cfg.PersonURN != "" {
		p.author = normalizePersonURN(p.cfg.PersonURN)
		logger.Debug(ctx, "using configured author urn", "author", p.author)
		return p.author, nil
	}

	urn, meErr := p.fetchProfileURN(ctx)
	if meErr == nil {
		p.author = urn
		return p.author, nil
	}
	logger.Debug(ctx, "profile lookup failed, trying id_token", "error", meErr)

	urn, tokenErr := p.urnFromIDToken()
	if tokenErr == nil {
		p.author = urn
		return p.author, nil
	}

	return "", domainerrors.NewAuthError("linkedin",
		fmt.Sprintf("could not resolve author: %v; id_token fallback: %v (set PERSON_URN to skip the lookup)", meErr, tokenErr),
		meErr)
}

// fetchProfileURN asks /me for the member id.
func (p *Publisher) fetchProfileURN(ctx context.Context) (string, error) {
	resp, body, err := p.doJSON(ctx, http.MethodGet, p.baseURL+"/me", nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("profile endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed meResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding profile response: %w", err)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("profile response has no id")
	}
	return personURNPrefix + parsed.ID, nil
}

// urnFromIDToken pulls the member id out of the OpenID id_token's
// payload without verifying the signature; the token came from the
// provider over TLS and is only used to address our own posts.
func (p *Publisher) urnFromIDToken() (string, error) {
	if p.cfg.IDToken == "" {
		return "", fmt.Errorf("no id_token configured")
	}

	parts := strings.Split(p.cfg.IDToken, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("id_token is not a JWT")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decoding id_token payload: %w", err)
	}

	var claims idTokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", fmt.Errorf("parsing id_token claims: %w", err)
	}
	if claims.Sub == "" {
		return "", fmt.Errorf("id_token has no sub claim")
	}

	return personURNPrefix + claims.Sub, nil
}

// normalizePersonURN accepts both a bare member id and a full URN.
func normalizePersonURN(urn string) string {
	if strings.HasPrefix(urn, personURNPrefix) {
		return urn
	}
	return personURNPrefix + urn
}
