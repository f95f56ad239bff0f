// Package statecodec encodes the OAuth transaction state that travels in the
// redirect URL. The portals do not share a cookie domain, so the login
// round-trip cannot lean on a server-side session; instead the whole
// transaction (nonce, CSRF state, requested role, signup intent) rides in an
// authenticated-encrypted payload that only this backend can mint or read.
package statecodec

import (
	"context"
	"errors"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/cccteam/logger"
	perrors "github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/gorilla/securecookie"
)

const codecName = "OAuthState"

// defaultMaxAge bounds the lifetime of a login round-trip. Anything older is
// treated as a replay.
const defaultMaxAge = 10 * time.Minute

// ErrInvalidState is returned for any payload that is malformed, forged,
// expired, or already consumed. Callers must abort the callback without
// attempting a token exchange.
var ErrInvalidState = errors.New("invalid oauth transaction state")

// Payload is one login transaction. It exists only for the lifetime of a
// single round-trip to the identity provider.
type Payload struct {
	Nonce     string     `json:"n"`
	CSRFState string     `json:"s"`
	Role      roles.Role `json:"r"`
	Signup    bool       `json:"su"`
	IssuedAt  time.Time  `json:"iat"`
	TxID      string     `json:"tid"`
}

// ReplayStore records consumed transaction ids for the payload lifetime.
type ReplayStore interface {
	// Consume marks id as used and reports whether this was its first use.
	Consume(ctx context.Context, id string, ttl time.Duration) (first bool, err error)
}

// Codec encrypts and authenticates transaction payloads with server-held keys.
type Codec struct {
	s      *securecookie.SecureCookie
	replay ReplayStore
	maxAge time.Duration
}

// Option configures a Codec.
type Option func(*Codec)

// WithMaxAge overrides the payload lifetime bound.
func WithMaxAge(d time.Duration) Option {
	return func(c *Codec) {
		c.maxAge = d
	}
}

// New creates a Codec. hashKey authenticates, blockKey encrypts; both are
// required so the payload is opaque to the client and the network.
func New(hashKey, blockKey []byte, replay ReplayStore, opts ...Option) *Codec {
	c := &Codec{
		s:      securecookie.New(hashKey, blockKey),
		replay: replay,
		maxAge: defaultMaxAge,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Encode seals p into an opaque URL-safe string, stamping IssuedAt and a
// fresh transaction id.
func (c *Codec) Encode(p *Payload) (string, error) {
	txID, err := uuid.NewV4()
	if err != nil {
		return "", perrors.Wrap(err, "uuid.NewV4()")
	}
	p.TxID = txID.String()
	p.IssuedAt = time.Now()

	encoded, err := c.s.Encode(codecName, p)
	if err != nil {
		return "", perrors.Wrap(err, "securecookie.Encode()")
	}

	return encoded, nil
}

// Decode opens an encoded payload, enforcing integrity, the age bound, and
// single use of the transaction id.
func (c *Codec) Decode(ctx context.Context, encoded string) (*Payload, error) {
	p := &Payload{}
	if err := c.s.Decode(codecName, encoded, p); err != nil {
		return nil, ErrInvalidState
	}

	age := time.Since(p.IssuedAt)
	if age < 0 || age > c.maxAge {
		return nil, ErrInvalidState
	}

	first, err := c.replay.Consume(ctx, p.TxID, c.maxAge)
	if err != nil {
		// A replay-store outage degrades to TTL-only protection rather than
		// locking every user out of login.
		logger.Ctx(ctx).Errorf("statecodec: replay store unavailable, accepting on TTL alone: %v", err)

		return p, nil
	}
	if !first {
		return nil, ErrInvalidState
	}

	return p, nil
}
