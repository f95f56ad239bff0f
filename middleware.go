package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/cccteam/httpio"
	"go.opentelemetry.io/otel"
)

// VerifyAccess rejects requests without a valid access token and stores the
// verified claims in the request context for downstream handlers.
func (a *Auth) VerifyAccess(next http.Handler) http.Handler {
	return a.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Auth.VerifyAccess()")
		defer span.End()

		token, ok := a.readAccessToken(r)
		if !ok {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewUnauthorizedMessage("missing access token"))
		}

		claims, err := a.engine.ParseAccess(token)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewUnauthorizedMessageWithError(err, "invalid access token"))
		}

		r = r.WithContext(context.WithValue(ctx, ctxAccessClaims, claims))

		next.ServeHTTP(w, r)

		return nil
	})
}

// Authenticated reports whether the caller holds a valid access token.
func (a *Auth) Authenticated() http.HandlerFunc {
	type response struct {
		Authenticated bool     `json:"authenticated"`
		UserID        string   `json:"userId,omitempty"`
		Email         string   `json:"email,omitempty"`
		Roles         []string `json:"roles,omitempty"`
		ActiveRole    string   `json:"activeRole,omitempty"`
	}

	return a.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "Auth.Authenticated()")
		defer span.End()

		token, ok := a.readAccessToken(r)
		if !ok {
			return httpio.NewEncoder(w).Ok(response{})
		}

		claims, err := a.engine.ParseAccess(token)
		if err != nil {
			return httpio.NewEncoder(w).Ok(response{})
		}

		return httpio.NewEncoder(w).Ok(response{
			Authenticated: true,
			UserID:        claims.Subject,
			Email:         claims.Email,
			Roles:         claims.Roles,
			ActiveRole:    claims.ActiveRole,
		})
	})
}

// readAccessToken pulls the access token from the cookie, or from the
// Authorization header for clients that keep it in memory.
func (a *Auth) readAccessToken(r *http.Request) (string, bool) {
	if token, ok := a.cookies.readAccessCookie(r); ok {
		return token, true
	}

	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer "), true
	}

	return "", false
}
