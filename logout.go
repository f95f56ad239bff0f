package auth

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/audit"
	"github.com/Malcan-Technologies/shoraka-sub003/devicefp"
	"github.com/Malcan-Technologies/shoraka-sub003/metrics"
	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Logout revokes every refresh token the user holds, clears the token
// cookies, and routes the browser through the provider's logout endpoint so
// the provider-side session dies too.
func (a *Auth) Logout() http.HandlerFunc {
	return a.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Auth.Logout()")
		defer span.End()

		returnTo := r.URL.Query().Get("returnUrl")

		userID, activeRole := a.identify(ctx, r)
		if returnTo == "" {
			returnTo = a.portals.URL(activeRole)
		}

		// Cookies are cleared even when the user cannot be identified; a
		// half-broken session should never survive an explicit logout.
		a.cookies.clearTokenCookies(w)

		if userID == ccc.NilUUID {
			http.Redirect(w, r, returnTo, http.StatusFound)

			return nil
		}

		if err := a.revokeAll(ctx, r, userID, "logout", audit.EventLogout); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if user, err := a.users.UserByID(ctx, userID); err == nil {
			a.bestEffortGlobalSignOut(ctx, user.ProviderSubject)
		}

		http.Redirect(w, r, a.oidc.LogoutURL(returnTo), http.StatusFound)

		return nil
	})
}

// PasswordChanged is the hook invoked after a password change completes.
// The old password-derived trust is void, so every session is revoked
// unconditionally, whatever the provider calls return.
func (a *Auth) PasswordChanged() http.HandlerFunc {
	return a.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Auth.PasswordChanged()")
		defer span.End()

		claims := ClaimsFromRequest(r)
		if claims == nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewUnauthorizedMessage("not authenticated"))
		}
		userID := userIDFromClaims(claims)

		if err := a.revokeAll(ctx, r, userID, "password changed", audit.EventPasswordChanged); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if user, err := a.users.UserByID(ctx, userID); err == nil {
			if err := a.users.SetPasswordChangedAt(ctx, userID, time.Now()); err != nil {
				logger.Ctx(ctx).Errorf("failed to stamp password change for user %s: %v", userID, err)
			}
			a.bestEffortGlobalSignOut(ctx, user.ProviderSubject)
		}

		a.cookies.clearTokenCookies(w)

		return httpio.NewEncoder(w).Ok(nil)
	})
}

// revokeAll bulk-revokes the user's refresh tokens and writes exactly one
// audit entry summarizing the count.
func (a *Auth) revokeAll(ctx context.Context, r *http.Request, userID ccc.UUID, reason string, event audit.Event) error {
	n, err := a.tokenStore.RevokeAllRefreshTokens(ctx, userID, reason)
	if err != nil {
		return errors.Wrap(err, "storage.RefreshTokenStore.RevokeAllRefreshTokens()")
	}
	metrics.TokensRevoked(n)

	if err := a.recorder.Record(ctx, audit.Entry{
		UserID:    userID,
		Event:     event,
		IP:        devicefp.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Metadata:  map[string]string{"revoked_count": strconv.FormatInt(n, 10)},
	}); err != nil {
		logger.Ctx(ctx).Errorf("failed to record %s for user %s: %v", event, userID, err)
	}

	return nil
}

// identify resolves the caller from the access token when possible, falling
// back to the refresh token record. Logout must work even with an expired
// access token in hand.
func (a *Auth) identify(ctx context.Context, r *http.Request) (ccc.UUID, roles.Role) {
	if token, ok := a.readAccessToken(r); ok {
		if claims, err := a.engine.ParseAccess(token); err == nil {
			role, _ := roles.Parse(claims.ActiveRole)

			return userIDFromClaims(claims), role
		}
	}

	if presented, ok := a.cookies.readRefreshCookie(r); ok {
		if rec, err := a.tokenStore.RefreshToken(ctx, presented); err == nil {
			role, _ := roles.Parse(rec.ActiveRole)

			return rec.UserID, role
		}
	}

	return ccc.NilUUID, roles.Investor
}
