// Package tokens mints short-lived access tokens and long-lived, single-use
// refresh tokens, and enforces the rotation invariant: a refresh token must
// never authorize more than one rotation.
package tokens

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/audit"
	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/Malcan-Technologies/shoraka-sub003/devicefp"
	"github.com/Malcan-Technologies/shoraka-sub003/metrics"
	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/Malcan-Technologies/shoraka-sub003/storage"
	"github.com/cccteam/logger"
	perrors "github.com/go-playground/errors/v5"
)

// Rotation failure taxonomy. Each maps to a 401/403-class response; there is
// no partial success.
var (
	ErrNoToken        = errors.New("no refresh token presented")
	ErrMalformedToken = errors.New("malformed refresh token")
	ErrNotFound       = errors.New("refresh token not found")
	ErrExpired        = errors.New("refresh token expired")
	ErrRevoked        = errors.New("refresh token revoked")
	ErrReuseDetected  = errors.New("refresh token reuse detected")
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour

	// refreshTokenBytes of entropy, base64url encoded.
	refreshTokenBytes = 32
	refreshTokenLen   = 43
)

// Pair is a freshly issued access/refresh token pair.
type Pair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Engine issues and rotates token pairs.
type Engine struct {
	signingKey []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	users      storage.UserStore
	store      storage.RefreshTokenStore
	recorder   audit.Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithAccessTTL overrides the access token lifetime. (default: 15m)
func WithAccessTTL(d time.Duration) Option {
	return func(e *Engine) {
		e.accessTTL = d
	}
}

// WithRefreshTTL overrides the refresh token lifetime. (default: 7d)
func WithRefreshTTL(d time.Duration) Option {
	return func(e *Engine) {
		e.refreshTTL = d
	}
}

// NewEngine creates an Engine. signingKey signs access tokens and must be
// shared by every backend replica.
func NewEngine(signingKey []byte, issuer string, users storage.UserStore, store storage.RefreshTokenStore, recorder audit.Recorder, opts ...Option) *Engine {
	e := &Engine{
		signingKey: signingKey,
		issuer:     issuer,
		accessTTL:  defaultAccessTTL,
		refreshTTL: defaultRefreshTTL,
		users:      users,
		store:      store,
		recorder:   recorder,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Issue mints a token pair for the user and persists the refresh token bound
// to the requesting device.
func (e *Engine) Issue(ctx context.Context, user *dbtypes.User, activeRole roles.Role, fp devicefp.Fingerprint, ip, userAgent string) (*Pair, error) {
	access, err := e.signAccess(user, activeRole)
	if err != nil {
		return nil, perrors.Wrap(err, "signAccess()")
	}

	refresh, err := newRefreshValue()
	if err != nil {
		return nil, perrors.Wrap(err, "newRefreshValue()")
	}

	expiresAt := time.Now().Add(e.refreshTTL)
	if err := e.store.InsertRefreshToken(ctx, &dbtypes.InsertRefreshToken{
		Token:       refresh,
		UserID:      user.ID,
		ActiveRole:  string(activeRole),
		ExpiresAt:   expiresAt,
		Fingerprint: fp.Hash,
		IP:          ip,
		UserAgent:   userAgent,
	}); err != nil {
		return nil, perrors.Wrap(err, "storage.RefreshTokenStore.InsertRefreshToken()")
	}

	return &Pair{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: expiresAt,
	}, nil
}

// Rotate exchanges a presented refresh token for a new pair, consuming the
// presented token. A token that was already consumed is treated as stolen:
// every refresh token belonging to its owner is revoked.
func (e *Engine) Rotate(ctx context.Context, presented string, fp devicefp.Fingerprint, ip, userAgent string) (*Pair, error) {
	if presented == "" {
		return nil, ErrNoToken
	}
	if !validRefreshValue(presented) {
		return nil, ErrMalformedToken
	}

	rec, err := e.store.RefreshToken(ctx, presented)
	if err != nil {
		if perrors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, perrors.Wrap(err, "storage.RefreshTokenStore.RefreshToken()")
	}

	if rec.Revoked {
		return nil, ErrRevoked
	}
	if time.Now().After(rec.ExpiresAt) {
		return nil, ErrExpired
	}

	// A token observed with used=true is a confirmed theft signal: either
	// the legitimate client or the thief rotated it first, and whichever
	// party holds the stale copy is now presenting it.
	if rec.Used {
		return nil, e.respondToReuse(ctx, rec, ip, userAgent)
	}

	// Device characteristics legitimately drift; a mismatch is a signal for
	// the audit trail, never an automatic block.
	if rec.Fingerprint != fp.Hash {
		logger.Ctx(ctx).Infof("refresh device fingerprint drift for user %s: stored=%s presented=%s", rec.UserID, rec.Fingerprint, fp.Hash)
	}

	// Consume before issuing. The conditional update is the linearization
	// point for concurrent rotations of the same token: exactly one caller
	// wins, and a lost race is indistinguishable from replay.
	won, err := e.store.MarkRefreshTokenUsed(ctx, presented)
	if err != nil {
		return nil, perrors.Wrap(err, "storage.RefreshTokenStore.MarkRefreshTokenUsed()")
	}
	if !won {
		return nil, e.respondToReuse(ctx, rec, ip, userAgent)
	}

	user, err := e.users.UserByID(ctx, rec.UserID)
	if err != nil {
		return nil, perrors.Wrap(err, "storage.UserStore.UserByID()")
	}

	pair, err := e.Issue(ctx, user, activeRoleFrom(rec, user), fp, ip, userAgent)
	if err != nil {
		return nil, perrors.Wrap(err, "Engine.Issue()")
	}

	return pair, nil
}

// respondToReuse revokes every refresh token the owner holds and records the
// incident. Always returns ErrReuseDetected.
func (e *Engine) respondToReuse(ctx context.Context, rec *dbtypes.RefreshToken, ip, userAgent string) error {
	n, err := e.store.RevokeAllRefreshTokens(ctx, rec.UserID, "refresh token reuse detected")
	if err != nil {
		logger.Ctx(ctx).Errorf("failed to revoke refresh tokens for user %s after reuse: %v", rec.UserID, err)
	} else {
		metrics.TokensRevoked(n)
	}

	e.recorder.RecordBestEffort(ctx, audit.Entry{
		UserID:    rec.UserID,
		Event:     audit.EventReuseDetected,
		IP:        ip,
		UserAgent: userAgent,
		Device:    rec.Fingerprint,
		Success:   false,
		Metadata:  map[string]string{"revoked": "all"},
	})
	metrics.ReuseDetected()

	return ErrReuseDetected
}

// activeRoleFrom carries the session's active role across a rotation. The
// role travels on the refresh token record, not on anything client-supplied.
func activeRoleFrom(rec *dbtypes.RefreshToken, user *dbtypes.User) roles.Role {
	if r := roles.Role(rec.ActiveRole); r.Valid() {
		return r
	}

	held := roles.FromStrings(user.Roles)
	if len(held) == 0 {
		return roles.Investor
	}

	return held[0]
}

func newRefreshValue() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", perrors.Wrap(err, "rand.Read()")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func validRefreshValue(s string) bool {
	if len(s) != refreshTokenLen {
		return false
	}
	if _, err := base64.RawURLEncoding.DecodeString(s); err != nil {
		return false
	}

	return true
}
