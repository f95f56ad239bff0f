// Package oidc is the thin adapter to the external identity provider. It owns
// discovery, the authorization URL, the code exchange, userinfo, and the
// provider's administrative surface (global sign-out, role attribute sync).
package oidc

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/cccteam/logger"
	"github.com/cenkalti/backoff/v4"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-playground/errors/v5"
	"golang.org/x/oauth2"
)

const (
	// discoveryAttempts bounds startup retries against the provider's
	// metadata document. Exhausting them is fatal to process startup.
	discoveryAttempts = 5

	exchangeTimeout = 10 * time.Second
)

var _ Authenticator = &OIDC{}

// OIDC is the production Authenticator backed by a discovered provider.
type OIDC struct {
	provider
	config
	clientSecret    string
	signupPath      string
	endSessionURL   string
	adminClient     *http.Client
	adminURL        string
	adminCredential string
}

// Option configures an OIDC gateway.
type Option func(*OIDC)

// WithSignupPath sets the hosted-UI sub-path substituted for the authorize
// path when a signup is requested. (default: /signup)
func WithSignupPath(p string) Option {
	return func(o *OIDC) {
		o.signupPath = p
	}
}

// WithAdminEndpoint points the gateway at the provider's admin API.
func WithAdminEndpoint(adminURL, credential string) Option {
	return func(o *OIDC) {
		o.adminURL = adminURL
		o.adminCredential = credential
	}
}

// New discovers the provider's metadata and returns a gateway. Discovery is
// retried with exponential backoff; failure after all attempts is returned to
// the caller, which should treat it as fatal.
func New(ctx context.Context, issuerURL, clientID, clientSecret, redirectURL string, opts ...Option) (*OIDC, error) {
	var p *oidc.Provider
	op := func() error {
		var err error
		p, err = oidc.NewProvider(ctx, issuerURL)

		return err
	}
	notify := func(err error, next time.Duration) {
		logger.Ctx(ctx).Infof("oidc discovery failed, retrying in %s: %v", next, err)
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), discoveryAttempts-1), ctx)
	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		return nil, errors.Wrap(err, "oidc.NewProvider()")
	}

	var discovered struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := p.Claims(&discovered); err != nil {
		return nil, errors.Wrap(err, "oidc.Provider.Claims()")
	}

	o := &OIDC{
		provider: p,
		config: &oAuth2{
			config: oauth2.Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				RedirectURL:  redirectURL,
				Endpoint:     p.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		},
		clientSecret:  clientSecret,
		signupPath:    "/signup",
		endSessionURL: discovered.EndSessionEndpoint,
		adminClient:   &http.Client{Timeout: exchangeTimeout},
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// AuthCodeURL returns the provider URL that starts the login round-trip. A
// signup transaction lands on the provider's registration page instead of its
// login page; everything else about the URL is identical.
func (o *OIDC) AuthCodeURL(state, nonce string, signup bool) string {
	authURL := o.config.AuthCodeURL(state, oidc.Nonce(nonce))
	if !signup {
		return authURL
	}

	u, err := url.Parse(authURL)
	if err != nil {
		return authURL
	}
	u.Path = o.signupPath

	return u.String()
}

// Exchange trades the authorization code for tokens and verifies the ID token
// against the nonce carried in the transaction state. The nonce comes from
// the decoded state payload, never from a client-supplied value.
func (o *OIDC) Exchange(ctx context.Context, code, expectedNonce string) (*TokenSet, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	oauth2Token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, classifyExchangeError(err)
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return nil, errors.Wrap(ErrBadCode, "no id_token in token response")
	}

	verifier := o.provider.Verifier(&oidc.Config{ClientID: o.config.ClientID()})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrap(ErrBadCode, "failed to verify ID token")
	}

	if idToken.Nonce != expectedNonce {
		return nil, errors.Wrap(ErrBadCode, "nonce mismatch")
	}

	return &TokenSet{
		AccessToken:  oauth2Token.AccessToken,
		RefreshToken: oauth2Token.RefreshToken,
		RawIDToken:   rawIDToken,
		Subject:      idToken.Subject,
	}, nil
}

// UserInfo fetches the user's profile from the provider's userinfo endpoint.
func (o *OIDC) UserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	ui, err := o.provider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if err != nil {
		return nil, errors.Wrap(ErrProviderUnavailable, err.Error())
	}

	info := &UserInfo{
		Subject:       ui.Subject,
		Email:         ui.Email,
		EmailVerified: ui.EmailVerified,
	}

	var names struct {
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := ui.Claims(&names); err == nil {
		info.GivenName = names.GivenName
		info.FamilyName = names.FamilyName
	}

	return info, nil
}

// LogoutURL returns the provider's end-session URL, redirecting back to
// returnTo once the provider-side session is gone.
func (o *OIDC) LogoutURL(returnTo string) string {
	if o.endSessionURL == "" {
		return returnTo
	}

	u, err := url.Parse(o.endSessionURL)
	if err != nil {
		return returnTo
	}
	q := u.Query()
	q.Set("client_id", o.config.ClientID())
	q.Set("logout_uri", returnTo)
	u.RawQuery = q.Encode()

	return u.String()
}

// classifyExchangeError separates a rejected/expired code from a provider
// outage so callers can pick user-facing messaging vs. retry.
func classifyExchangeError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil && retrieveErr.Response.StatusCode < 500 {
		return errors.Wrap(ErrBadCode, err.Error())
	}

	return errors.Wrap(ErrProviderUnavailable, err.Error())
}
