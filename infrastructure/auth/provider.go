// Package auth provides credential handling for the Microsoft Graph API.
package auth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"

	"github.com/felixgeelhaar/sharepoint-go/domain/drive"
)

// Microsoft identity platform endpoints for delegated tokens.
const (
	authURL  = "https://login.microsoftonline.com/common/oauth2/v2.0/authorize"
	tokenURL = "https://login.microsoftonline.com/common/oauth2/v2.0/token"
)

// delegatedScopes are requested when refreshing a delegated token.
var delegatedScopes = []string{"offline_access", "Files.ReadWrite.All", "Sites.Read.All", "User.Read"}

// TokenProvider supplies bearer tokens for Graph requests.
type TokenProvider interface {
	// Token returns a valid access token, refreshing it when the
	// underlying credential supports refresh.
	Token(ctx context.Context) (string, error)
}

// DelegatedConfig holds a delegated OAuth credential obtained out of band.
// Token acquisition UX (consent, device code) is not this package's concern;
// it only exchanges what is configured.
type DelegatedConfig struct {
	// AccessToken is the delegated bearer token.
	AccessToken string

	// RefreshToken enables silent refresh when set together with ClientID.
	RefreshToken string

	// ClientID is the application id used for refresh.
	ClientID string
}

// delegatedProvider serves tokens from a stored delegated credential. The
// oauth2 token source is built on first use so a missing credential fails at
// the first operation, not at construction.
type delegatedProvider struct {
	cfg DelegatedConfig

	once   sync.Once
	source oauth2.TokenSource
}

// NewDelegatedProvider creates a provider around a stored delegated token.
func NewDelegatedProvider(cfg DelegatedConfig) TokenProvider {
	return &delegatedProvider{cfg: cfg}
}

// Token returns the current access token. It returns drive.ErrAuthRequired
// when no access token is configured.
func (p *delegatedProvider) Token(ctx context.Context) (string, error) {
	if p.cfg.AccessToken == "" {
		return "", fmt.Errorf("%w: no access token configured", drive.ErrAuthRequired)
	}

	p.once.Do(func() {
		seed := &oauth2.Token{
			AccessToken:  p.cfg.AccessToken,
			RefreshToken: p.cfg.RefreshToken,
			TokenType:    "Bearer",
		}

		if p.cfg.RefreshToken == "" || p.cfg.ClientID == "" {
			p.source = oauth2.StaticTokenSource(seed)
			return
		}

		oc := oauth2.Config{
			ClientID: p.cfg.ClientID,
			Scopes:   delegatedScopes,
			Endpoint: oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL},
		}
		p.source = oc.TokenSource(context.WithoutCancel(ctx), seed)
	})

	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", drive.ErrAuthRequired, err)
	}
	return tok.AccessToken, nil
}
