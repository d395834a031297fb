package bionyx

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// Endpoint is the OAuth2 authorization server used by bionyx accounts.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://ekeybionyxprod.b2clogin.com/ekeybionyxprod.onmicrosoft.com/B2C_1_sign_in_v2/oauth2/v2.0/authorize",
	TokenURL: "https://ekeybionyxprod.b2clogin.com/ekeybionyxprod.onmicrosoft.com/B2C_1_sign_in_v2/oauth2/v2.0/token",
}

// Scope grants access to the third-party API.
const Scope = "https://ekeybionyxprod.onmicrosoft.com/3rd-party-api/api-access"

// OAuth2TokenProvider adapts an oauth2.TokenSource to TokenProvider. Wrap the
// source in oauth2.ReuseTokenSource to avoid a token request per call.
type OAuth2TokenProvider struct {
	src oauth2.TokenSource
}

var _ TokenProvider = (*OAuth2TokenProvider)(nil)

// NewOAuth2TokenProvider creates a TokenProvider backed by src.
func NewOAuth2TokenProvider(src oauth2.TokenSource) *OAuth2TokenProvider {
	return &OAuth2TokenProvider{src: src}
}

func (p *OAuth2TokenProvider) AccessToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tok, err := p.src.Token()
	if err != nil {
		return "", fmt.Errorf("bionyx: oauth2 token: %w", err)
	}
	return tok.AccessToken, nil
}

// OAuth2Config returns an oauth2.Config for the bionyx authorization server.
// Empty scopes default to Scope plus offline_access so a refresh token is issued.
func OAuth2Config(clientID, clientSecret, redirectURL string, scopes ...string) *oauth2.Config {
	if len(scopes) == 0 {
		scopes = []string{Scope, "offline_access"}
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     Endpoint,
	}
}
