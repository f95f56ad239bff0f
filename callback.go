package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/audit"
	"github.com/Malcan-Technologies/shoraka-sub003/devicefp"
	"github.com/Malcan-Technologies/shoraka-sub003/metrics"
	"github.com/Malcan-Technologies/shoraka-sub003/oidc"
	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/Malcan-Technologies/shoraka-sub003/statecodec"
	"github.com/Malcan-Technologies/shoraka-sub003/tokens"
	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Callback is the handler for the redirect back from the identity provider.
// It decodes the transaction state, exchanges the code, resolves the user,
// authorizes the requested role, and issues the initial token pair.
func (a *Auth) Callback() http.HandlerFunc {
	return a.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Auth.Callback()")
		defer span.End()

		q := r.URL.Query()

		// Nothing proceeds, least of all the token exchange, without an
		// intact transaction state.
		state, err := a.codec.Decode(ctx, q.Get("state"))
		if err != nil {
			http.Redirect(w, r, fmt.Sprintf("%s?message=%s", a.loginPath, url.QueryEscape("Sign-in failed")), http.StatusFound)

			return httpio.NewBadRequestMessageWithError(err, "invalid transaction state")
		}

		if provErr := q.Get("error"); provErr != "" {
			return a.callbackProviderError(w, r, state, provErr, q.Get("error_description"))
		}

		// The nonce comes from the decoded state, never from anything the
		// client could substitute.
		tokenSet, err := a.oidc.Exchange(ctx, q.Get("code"), state.Nonce)
		if err != nil {
			metrics.Login(state.Role.String(), false)
			if errors.Is(err, oidc.ErrProviderUnavailable) {
				return a.redirectError(w, r, "Sign-in is temporarily unavailable", errors.Wrap(err, "oidc.Authenticator.Exchange()"))
			}

			return a.redirectError(w, r, "Sign-in failed", errors.Wrap(err, "oidc.Authenticator.Exchange()"))
		}

		info, err := a.oidc.UserInfo(ctx, tokenSet.AccessToken)
		if err != nil {
			metrics.Login(state.Role.String(), false)

			return a.redirectError(w, r, "Sign-in failed", errors.Wrap(err, "oidc.Authenticator.UserInfo()"))
		}

		user, created, err := a.resolveUser(ctx, info)
		if err != nil {
			metrics.Login(state.Role.String(), false)

			return a.redirectError(w, r, "Internal Server Error", errors.Wrap(err, "Auth.resolveUser()"))
		}

		// Admin accounts bypass onboarding: an admin-signup transaction
		// grants the role immediately. These transactions are only minted
		// by out-of-band provisioning, never by the public login handler.
		if state.Signup && state.Role == roles.Admin {
			if err := a.users.GrantRole(ctx, user.ID, string(roles.Admin)); err != nil {
				return a.redirectError(w, r, "Internal Server Error", errors.Wrap(err, "storage.UserStore.GrantRole()"))
			}
			user.Roles = append(user.Roles, string(roles.Admin))
			a.syncRoleAttribute(ctx, user.ProviderSubject, roles.FromStrings(user.Roles))
		}

		if state.Role == roles.Admin && !roles.Contains(roles.FromStrings(user.Roles), roles.Admin) {
			return a.denyAdmin(ctx, w, r, user.ID, info.Subject)
		}

		fp := devicefp.Extract(r)
		pair, err := a.engine.Issue(ctx, user, state.Role, fp, devicefp.ClientIP(r), r.UserAgent())
		if err != nil {
			metrics.Login(state.Role.String(), false)

			return a.redirectError(w, r, "Internal Server Error", errors.Wrap(err, "TokenEngine.Issue()"))
		}

		a.recorder.RecordBestEffort(ctx, audit.Entry{
			UserID:    user.ID,
			Event:     a.loginEvent(ctx, r, user.ID, state, created),
			Portal:    state.Role.String(),
			IP:        devicefp.ClientIP(r),
			UserAgent: r.UserAgent(),
			Device:    fp.Hash,
			Success:   true,
			Metadata:  map[string]string{"active_role": state.Role.String()},
		})
		metrics.Login(state.Role.String(), true)

		http.Redirect(w, r, a.portalRedirect(ctx, w, user.ID, state.Role, pair), http.StatusFound)

		return nil
	})
}

// callbackProviderError handles a provider-reported error. A signup attempt
// for an account the provider already knows routes back to sign-in with a
// hint; everything else is terminal.
func (a *Auth) callbackProviderError(w http.ResponseWriter, r *http.Request, state *statecodec.Payload, provErr, description string) error {
	metrics.Login(state.Role.String(), false)

	if state.Signup && strings.Contains(strings.ToLower(description), "already exists") {
		redirect := fmt.Sprintf("%s?role=%s&error=user_exists", a.loginPath, url.QueryEscape(state.Role.String()))
		http.Redirect(w, r, redirect, http.StatusFound)

		return nil
	}

	return a.redirectError(w, r, "Sign-in failed", errors.Newf("provider returned error %q: %s", provErr, description))
}

// denyAdmin rejects a non-admin reaching for the admin portal: one audit
// entry, then a forced provider sign-out so the portal cannot loop the user
// straight back into authorization.
func (a *Auth) denyAdmin(ctx context.Context, w http.ResponseWriter, r *http.Request, userID ccc.UUID, subject string) error {
	if err := a.recorder.Record(ctx, audit.Entry{
		UserID:    userID,
		Event:     audit.EventAdminDenied,
		Portal:    roles.Admin.String(),
		IP:        devicefp.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   false,
	}); err != nil {
		logger.Ctx(ctx).Errorf("failed to record admin denial for user %s: %v", userID, err)
	}
	metrics.Login(roles.Admin.String(), false)

	a.bestEffortGlobalSignOut(ctx, subject)

	http.Redirect(w, r, fmt.Sprintf("%s?message=%s", a.loginPath, url.QueryEscape("Unauthorized")), http.StatusFound)

	return httpio.NewForbiddenMessage("not authorized for the admin portal")
}

// loginEvent classifies the successful callback: SIGNUP for a new account,
// ROLE_SWITCHED when a live session re-enters under a different role, LOGIN
// otherwise.
func (a *Auth) loginEvent(ctx context.Context, r *http.Request, userID ccc.UUID, state *statecodec.Payload, created bool) audit.Event {
	if state.Signup || created {
		return audit.EventSignup
	}

	if presented, ok := a.cookies.readRefreshCookie(r); ok {
		rec, err := a.tokenStore.RefreshToken(ctx, presented)
		if err == nil && rec.UserID == userID && !rec.Revoked && rec.ActiveRole != state.Role.String() {
			return audit.EventRoleSwitched
		}
	}

	return audit.EventLogin
}

// portalRedirect builds the post-login redirect and delivers the tokens:
// cookies in production, query parameters in dev mode where the portals run
// cross-origin.
func (a *Auth) portalRedirect(ctx context.Context, w http.ResponseWriter, userID ccc.UUID, activeRole roles.Role, pair *tokens.Pair) string {
	target := a.portals.URL(activeRole) + a.callbackPath

	params := url.Values{}
	params.Set("role", activeRole.String())

	if activeRole != roles.Admin && a.onboarding != nil {
		complete, err := a.onboarding.OnboardingComplete(ctx, userID, activeRole)
		switch {
		case err != nil:
			logger.Ctx(ctx).Errorf("onboarding status lookup failed for user %s: %v", userID, err)
		case !complete:
			params.Set("onboarding", "required")
		}
	}

	if a.devMode {
		params.Set("access_token", pair.AccessToken)
		params.Set("refresh_token", pair.RefreshToken)
	} else {
		a.cookies.setTokenCookies(w, pair.AccessToken, pair.RefreshToken, pair.RefreshExpiresAt)
	}

	return target + "?" + params.Encode()
}

// redirectError sends the user to a generic error page and surfaces the
// cause to the error log.
func (a *Auth) redirectError(w http.ResponseWriter, r *http.Request, message string, err error) error {
	http.Redirect(w, r, fmt.Sprintf("%s?message=%s", a.loginPath, url.QueryEscape(message)), http.StatusFound)

	return err
}

// syncRoleAttribute mirrors the held role set into the provider, best-effort.
func (a *Auth) syncRoleAttribute(ctx context.Context, subject string, held []roles.Role) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.oidc.SetRoleAttribute(ctx, subject, held); err != nil {
		logger.Ctx(ctx).Errorf("failed to sync role attribute for subject %s: %v", subject, err)
	}
}

// bestEffortGlobalSignOut forces a provider-side sign-out, logging and
// ignoring any failure.
func (a *Auth) bestEffortGlobalSignOut(ctx context.Context, subject string) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.oidc.GlobalSignOut(ctx, subject); err != nil {
		logger.Ctx(ctx).Errorf("failed to force provider sign-out for subject %s: %v", subject, err)
	}
}
