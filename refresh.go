package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Malcan-Technologies/shoraka-sub003/audit"
	"github.com/Malcan-Technologies/shoraka-sub003/devicefp"
	"github.com/Malcan-Technologies/shoraka-sub003/metrics"
	"github.com/Malcan-Technologies/shoraka-sub003/tokens"
	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// RefreshToken rotates the presented refresh token and returns a fresh
// access token. The refresh token travels in an HTTP-only cookie; in dev
// mode only, a bearer header or request body is accepted instead.
func (a *Auth) RefreshToken() http.HandlerFunc {
	type request struct {
		RefreshToken string `json:"refreshToken"`
	}
	type response struct {
		AccessToken string `json:"accessToken"`
	}

	return a.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Auth.RefreshToken()")
		defer span.End()

		presented, ok := a.cookies.readRefreshCookie(r)
		if !ok && a.devMode {
			// Local development only; production clients present the cookie.
			if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				presented = strings.TrimPrefix(h, "Bearer ")
			} else {
				body := &request{}
				if err := json.NewDecoder(r.Body).Decode(body); err == nil {
					presented = body.RefreshToken
				}
			}
		}

		fp := devicefp.Extract(r)
		pair, err := a.engine.Rotate(ctx, presented, fp, devicefp.ClientIP(r), r.UserAgent())
		if err != nil {
			metrics.Refresh(false)

			return httpio.NewEncoder(w).ClientMessage(ctx, rotationError(err))
		}

		a.cookies.setTokenCookies(w, pair.AccessToken, pair.RefreshToken, pair.RefreshExpiresAt)
		metrics.Refresh(true)

		if claims, err := a.engine.ParseAccess(pair.AccessToken); err == nil {
			a.recorder.RecordBestEffort(ctx, audit.Entry{
				UserID:    userIDFromClaims(claims),
				Event:     audit.EventRefresh,
				Portal:    claims.ActiveRole,
				IP:        devicefp.ClientIP(r),
				UserAgent: r.UserAgent(),
				Device:    fp.Hash,
				Success:   true,
			})
		}

		res := response{AccessToken: pair.AccessToken}
		if a.devMode {
			w.Header().Set("X-Refresh-Token", pair.RefreshToken)
		}

		return httpio.NewEncoder(w).Ok(res)
	})
}

func userIDFromClaims(claims *tokens.AccessClaims) ccc.UUID {
	id, err := ccc.UUIDFromString(claims.Subject)
	if err != nil {
		return ccc.NilUUID
	}

	return id
}

// rotationError maps the engine's failure taxonomy onto client responses.
// Reuse detection stays a 403 and is never downgraded: the caller must know
// its session family is gone.
func rotationError(err error) error {
	switch {
	case errors.Is(err, tokens.ErrReuseDetected):
		return httpio.NewForbiddenMessage("refresh token reuse detected")
	case errors.Is(err, tokens.ErrRevoked):
		return httpio.NewForbiddenMessage("refresh token revoked")
	case errors.Is(err, tokens.ErrNoToken),
		errors.Is(err, tokens.ErrMalformedToken),
		errors.Is(err, tokens.ErrNotFound),
		errors.Is(err, tokens.ErrExpired):
		return httpio.NewUnauthorizedMessageWithError(err, "invalid refresh token")
	default:
		return err
	}
}
