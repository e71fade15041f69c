package auth

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// graphDefaultScope requests all statically consented Graph permissions.
const graphDefaultScope = "https://graph.microsoft.com/.default"

// AzureConfig configures the azidentity-backed provider for app-only access.
type AzureConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// If ClientSecret is empty, uses DefaultAzureCredential (managed
	// identity, environment, CLI).
}

// azureProvider adapts an azcore.TokenCredential to TokenProvider.
type azureProvider struct {
	cred   azcore.TokenCredential
	scopes []string
}

// NewAzureProvider creates a provider backed by Azure AD app credentials.
func NewAzureProvider(cfg AzureConfig) (TokenProvider, error) {
	var cred azcore.TokenCredential
	var err error

	if cfg.ClientSecret != "" {
		cred, err = azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create client secret credential: %w", err)
		}
	} else {
		cred, err = azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create default credential: %w", err)
		}
	}

	return &azureProvider{
		cred:   cred,
		scopes: []string{graphDefaultScope},
	}, nil
}

// NewAzureProviderFromCredential wraps an existing token credential.
func NewAzureProviderFromCredential(cred azcore.TokenCredential) TokenProvider {
	return &azureProvider{
		cred:   cred,
		scopes: []string{graphDefaultScope},
	}
}

// Token fetches an access token from the credential.
func (p *azureProvider) Token(ctx context.Context) (string, error) {
	tok, err := p.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: p.scopes})
	if err != nil {
		return "", fmt.Errorf("failed to acquire graph token: %w", err)
	}
	return tok.Token, nil
}
