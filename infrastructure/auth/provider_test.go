package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/sharepoint-go/domain/drive"
)

func TestDelegatedProviderMissingToken(t *testing.T) {
	t.Parallel()

	p := NewDelegatedProvider(DelegatedConfig{})

	_, err := p.Token(context.Background())
	if !errors.Is(err, drive.ErrAuthRequired) {
		t.Errorf("Token() error = %v, want ErrAuthRequired", err)
	}
}

func TestDelegatedProviderStaticToken(t *testing.T) {
	t.Parallel()

	p := NewDelegatedProvider(DelegatedConfig{
		AccessToken: "abc123",
	})

	token, err := p.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "abc123" {
		t.Errorf("Token() = %s, want abc123", token)
	}

	// Cached source serves subsequent calls.
	token, err = p.Token(context.Background())
	if err != nil || token != "abc123" {
		t.Errorf("second Token() = %s, %v", token, err)
	}
}
