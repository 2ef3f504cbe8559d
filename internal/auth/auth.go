// Package auth is the client side of the authentication server: email
// sign-up, email sign-in and social (OAuth) sign-in.
//
// Every Client call returns exactly one outcome. A nil error is success;
// otherwise the error carries a human-readable message, see Message.
package auth

import (
	"context"
	"fmt"
	"strings"
)

// Provider is a social identity provider.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
)

// Providers lists the supported providers in display order.
var Providers = []Provider{ProviderGoogle, ProviderGitHub}

// ParseProvider parses a provider name, case-insensitively.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown provider %q", s)
	}
	return p, nil
}

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	return p == ProviderGoogle || p == ProviderGitHub
}

// Label is the button text for p.
func (p Provider) Label() string {
	switch p {
	case ProviderGoogle:
		return "Google"
	case ProviderGitHub:
		return "GitHub"
	default:
		return string(p)
	}
}

// SignUpEmailRequest creates an account with email and password.
type SignUpEmailRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CallbackURL string `json:"callbackURL"`
}

// SignInEmailRequest signs in with email and password.
type SignInEmailRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CallbackURL string `json:"callbackURL"`
}

// SocialSignInRequest starts an OAuth flow with a provider.
type SocialSignInRequest struct {
	Provider    Provider `json:"provider"`
	CallbackURL string   `json:"callbackURL"`
}

// Client talks to the authentication server.
type Client interface {
	SignUpEmail(ctx context.Context, req SignUpEmailRequest) error
	SignInEmail(ctx context.Context, req SignInEmailRequest) error
	SignInSocial(ctx context.Context, req SocialSignInRequest) error
}
