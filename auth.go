// Package auth is the authentication and session-lifecycle core shared by
// the platform's portals. It turns the identity provider's OAuth/OIDC flow
// into rotating application sessions that work across front-ends with no
// shared cookie domain.
package auth

import (
	"net/http"

	"github.com/Malcan-Technologies/shoraka-sub003/audit"
	"github.com/Malcan-Technologies/shoraka-sub003/oidc"
	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/Malcan-Technologies/shoraka-sub003/storage"
	"github.com/Malcan-Technologies/shoraka-sub003/tokens"
	"github.com/cccteam/logger"
)

const name = "github.com/Malcan-Technologies/shoraka-sub003"

// ctxKey is a type for storing values in the request context
type ctxKey string

const ctxAccessClaims ctxKey = "accessClaims"

// Auth wires the login, callback, refresh, and logout flows together. It is
// constructed once at process start; every provider and storage dependency
// is injected explicitly.
type Auth struct {
	oidc       oidc.Authenticator
	codec      StateCodec
	engine     TokenEngine
	users      storage.UserStore
	tokenStore storage.RefreshTokenStore
	recorder   audit.Recorder
	onboarding OnboardingChecker
	portals    roles.Portals
	handle     LogHandler
	cookies    cookieManager

	// devMode relaxes cookie attributes and token transport for local
	// cross-port development. Never enable it in production.
	devMode bool

	loginPath    string
	callbackPath string
}

// New creates an Auth core.
func New(
	oidcAuth oidc.Authenticator, codec StateCodec, engine TokenEngine,
	users storage.UserStore, tokenStore storage.RefreshTokenStore,
	recorder audit.Recorder, portals roles.Portals, options ...Option,
) *Auth {
	a := &Auth{
		oidc:         oidcAuth,
		codec:        codec,
		engine:       engine,
		users:        users,
		tokenStore:   tokenStore,
		recorder:     recorder,
		portals:      portals,
		handle:       defaultLogHandler,
		cookies:      newCookieClient(),
		loginPath:    "/auth/login",
		callbackPath: "/auth/callback",
	}
	for _, opt := range options {
		opt(a)
	}

	return a
}

// ClaimsFromRequest returns the access claims stored by VerifyAccess.
func ClaimsFromRequest(r *http.Request) *tokens.AccessClaims {
	claims, ok := r.Context().Value(ctxAccessClaims).(*tokens.AccessClaims)
	if !ok {
		logger.Req(r).Errorf("failed to find %s in request context", ctxAccessClaims)
	}

	return claims
}
