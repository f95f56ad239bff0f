package auth

import (
	"context"
	"net/http"

	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/Malcan-Technologies/shoraka-sub003/devicefp"
	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/Malcan-Technologies/shoraka-sub003/statecodec"
	"github.com/Malcan-Technologies/shoraka-sub003/tokens"
	"github.com/cccteam/ccc"
)

// LogHandler adapts an error-returning handler into an http.HandlerFunc.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// StateCodec seals and opens OAuth transaction state.
type StateCodec interface {
	Encode(p *statecodec.Payload) (string, error)
	Decode(ctx context.Context, encoded string) (*statecodec.Payload, error)
}

// TokenEngine issues, rotates, and verifies token pairs.
type TokenEngine interface {
	Issue(ctx context.Context, user *dbtypes.User, activeRole roles.Role, fp devicefp.Fingerprint, ip, userAgent string) (*tokens.Pair, error)
	Rotate(ctx context.Context, presented string, fp devicefp.Fingerprint, ip, userAgent string) (*tokens.Pair, error)
	ParseAccess(token string) (*tokens.AccessClaims, error)
}

// OnboardingChecker reports whether a user has completed onboarding for a
// role. The onboarding workflows themselves live outside this core.
type OnboardingChecker interface {
	OnboardingComplete(ctx context.Context, userID ccc.UUID, role roles.Role) (bool, error)
}

// Handlers is the HTTP surface exposed to the portal routers.
type Handlers interface {
	Login() http.HandlerFunc
	Callback() http.HandlerFunc
	RefreshToken() http.HandlerFunc
	Logout() http.HandlerFunc
	PasswordChanged() http.HandlerFunc
	Authenticated() http.HandlerFunc
	VerifyAccess(next http.Handler) http.Handler
}
