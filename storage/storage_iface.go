package storage

import (
	"context"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/cccteam/ccc"
)

// UserStore manages the identity anchor records.
type UserStore interface {
	// UserByID returns the user with the given local id.
	UserByID(ctx context.Context, id ccc.UUID) (*dbtypes.User, error)
	// UserByProviderSubject returns the user bound to the provider subject.
	UserByProviderSubject(ctx context.Context, subject string) (*dbtypes.User, error)
	// UserByEmail returns the user with the given email.
	UserByEmail(ctx context.Context, email string) (*dbtypes.User, error)
	// CreateUser inserts a new user and returns the stored record.
	CreateUser(ctx context.Context, u *dbtypes.User) (*dbtypes.User, error)
	// BindProviderSubject attaches a provider subject to an existing user.
	BindProviderSubject(ctx context.Context, id ccc.UUID, subject string) error
	// SyncProfile updates the mutable profile fields.
	SyncProfile(ctx context.Context, id ccc.UUID, email string, emailVerified bool, givenName, familyName string) error
	// GrantRole adds a role to the user's held set if not already present.
	GrantRole(ctx context.Context, id ccc.UUID, role string) error
	// SetPasswordChangedAt stamps the password-changed timestamp.
	SetPasswordChangedAt(ctx context.Context, id ccc.UUID, at time.Time) error
}

// RefreshTokenStore manages the single-use refresh token capability records.
// Records are never deleted on this path; they are retained for forensics.
type RefreshTokenStore interface {
	// InsertRefreshToken persists a freshly issued token.
	InsertRefreshToken(ctx context.Context, t *dbtypes.InsertRefreshToken) error
	// RefreshToken returns the record for the opaque token value.
	RefreshToken(ctx context.Context, token string) (*dbtypes.RefreshToken, error)
	// MarkRefreshTokenUsed flips used=true only if the token is currently
	// unused and unrevoked, reporting whether this caller won the flip. A
	// false return is a reuse signal, not an error.
	MarkRefreshTokenUsed(ctx context.Context, token string) (won bool, err error)
	// RevokeRefreshToken revokes a single token.
	RevokeRefreshToken(ctx context.Context, token, reason string) error
	// RevokeAllRefreshTokens revokes every non-revoked token owned by the
	// user and returns how many were revoked.
	RevokeAllRefreshTokens(ctx context.Context, userID ccc.UUID, reason string) (int64, error)
}

// AuditStore appends access-log records. Entries are never mutated.
type AuditStore interface {
	InsertAccessLog(ctx context.Context, entry *dbtypes.AccessLog) (ccc.UUID, error)
}
