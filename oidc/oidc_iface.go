package oidc

import (
	"context"

	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Authenticator is the gateway to the external identity provider.
type Authenticator interface {
	// AuthCodeURL returns the provider URL that starts the login round-trip.
	// A signup transaction lands on the provider's registration page.
	AuthCodeURL(state, nonce string, signup bool) string

	// Exchange trades the authorization code for tokens, verifying the ID
	// token against the nonce carried in the transaction state.
	Exchange(ctx context.Context, code, expectedNonce string) (*TokenSet, error)

	// UserInfo fetches the user's profile from the provider.
	UserInfo(ctx context.Context, accessToken string) (*UserInfo, error)

	// GlobalSignOut invalidates every provider-side session for the subject.
	GlobalSignOut(ctx context.Context, subject string) error

	// SetRoleAttribute mirrors the local role set into the provider.
	SetRoleAttribute(ctx context.Context, subject string, rs []roles.Role) error

	// LogoutURL returns the provider's end-session URL.
	LogoutURL(returnTo string) string
}

// Defined for testability
type provider interface {
	Verifier(config *oidc.Config) *oidc.IDTokenVerifier
	Endpoint() oauth2.Endpoint
	UserInfo(ctx context.Context, tokenSource oauth2.TokenSource) (*oidc.UserInfo, error)
}

// Defined for testability
type config interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	ClientID() string
}
