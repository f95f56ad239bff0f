package oidc

import (
	"context"
	"errors"

	perrors "github.com/go-playground/errors/v5"
	"golang.org/x/oauth2"
)

// Exchange and userinfo failures fall into exactly one of these classes.
var (
	// ErrBadCode covers a rejected, expired, or substituted authorization
	// code and a failed ID-token/nonce verification.
	ErrBadCode = errors.New("authorization code rejected")

	// ErrProviderUnavailable covers network failures and provider outages.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// TokenSet is the result of a successful code exchange.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	RawIDToken   string
	Subject      string
}

// UserInfo is the profile returned by the provider's userinfo endpoint.
type UserInfo struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
}

var _ config = &oAuth2{}

type oAuth2 struct {
	config oauth2.Config
}

func (o *oAuth2) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return o.config.AuthCodeURL(state, opts...)
}

func (o *oAuth2) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	t, err := o.config.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, perrors.Wrap(err, "oauth2.Config.Exchange()")
	}

	return t, nil
}

func (o *oAuth2) ClientID() string {
	return o.config.ClientID
}
