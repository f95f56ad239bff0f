package auth

import (
	"net/http"

	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/Malcan-Technologies/shoraka-sub003/statecodec"
	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"go.opentelemetry.io/otel"
)

// Login initiates the OIDC login flow. The whole transaction rides in the
// encrypted state parameter; nothing is persisted and no session cookie is
// written.
func (a *Auth) Login() http.HandlerFunc {
	return a.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Auth.Login()")
		defer span.End()

		role, err := roles.Parse(r.URL.Query().Get("role"))
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewBadRequestMessageWithError(err, "invalid role"))
		}
		signup := isTruthy(r.URL.Query().Get("signup"))

		// Admin accounts are provisioned out-of-band only; a public admin
		// signup must die before any redirect is issued.
		if signup && role == roles.Admin {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewBadRequestMessage("admin signup is not permitted"))
		}

		nonce, err := uuid.NewV4()
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "uuid.NewV4()"))
		}
		csrfState, err := uuid.NewV4()
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "uuid.NewV4()"))
		}

		encoded, err := a.codec.Encode(&statecodec.Payload{
			Nonce:     nonce.String(),
			CSRFState: csrfState.String(),
			Role:      role,
			Signup:    signup,
		})
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "StateCodec.Encode()"))
		}

		http.Redirect(w, r, a.oidc.AuthCodeURL(encoded, nonce.String(), signup), http.StatusFound)

		return nil
	})
}

func isTruthy(s string) bool {
	return s == "true" || s == "1"
}
