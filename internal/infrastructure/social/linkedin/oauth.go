package linkedin

import (
	"context"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"golang.org/x/oauth2"
)

const (
	authURL  = "https://www.linkedin.com/oauth/v2/authorization"
	tokenURL = "https://www.linkedin.com/oauth/v2/accessToken"

	// oauthState is static because the flow is a copy-paste exchange in
	// a terminal, not a browser redirect handler.
	oauthState = "daily-post"
)

// oauthScopes covers posting plus the OpenID profile needed for the
// id_token author fallback.
var oauthScopes = []string{"w_member_social", "openid", "profile"}

// OAuthToken is the subset of the token response the config stores.
type OAuthToken struct {
	AccessToken string
	IDToken     string
}

// newOAuthConfig builds the three-legged flow configuration. LinkedIn
// wants client credentials in the request body, not basic auth.
func newOAuthConfig(cfg *config.Config, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.LinkedIn.ClientID,
		ClientSecret: cfg.LinkedIn.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       oauthScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// BuildAuthURL returns the URL the user must visit to authorize the
// application.
func BuildAuthURL(cfg *config.Config, redirectURL string) (string, error) {
	if cfg.LinkedIn.ClientID == "" {
		return "", domainerrors.NewConfigError("linkedin.client_id", "LINKEDIN_CLIENT_ID is required for the OAuth flow", nil)
	}
	return newOAuthConfig(cfg, redirectURL).AuthCodeURL(oauthState), nil
}

// ExchangeCode trades an authorization code for tokens.
func ExchangeCode(ctx context.Context, cfg *config.Config, redirectURL, code string) (OAuthToken, error) {
	if cfg.LinkedIn.ClientID == "" || cfg.LinkedIn.ClientSecret == "" {
		return OAuthToken{}, domainerrors.NewConfigError("linkedin.client_secret", "LINKEDIN_CLIENT_ID and LINKEDIN_CLIENT_SECRET are required for the OAuth flow", nil)
	}

	token, err := newOAuthConfig(cfg, redirectURL).Exchange(ctx, code)
	if err != nil {
		return OAuthToken{}, domainerrors.NewAuthError("linkedin", "exchanging authorization code", err)
	}

	idToken, _ := token.Extra("id_token").(string)
	return OAuthToken{
		AccessToken: token.AccessToken,
		IDToken:     idToken,
	}, nil
}
