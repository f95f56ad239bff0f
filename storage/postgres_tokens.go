package storage

import (
	"context"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/cccteam/ccc"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5"
)

// InsertRefreshToken persists a freshly issued token.
func (d *PostgresDriver) InsertRefreshToken(ctx context.Context, t *dbtypes.InsertRefreshToken) error {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		INSERT INTO "RefreshTokens"
			("Token", "UserId", "ActiveRole", "ExpiresAt", "Fingerprint", "Ip", "UserAgent", "CreatedAt")
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := d.conn.Exec(ctx, query, t.Token, t.UserID, t.ActiveRole, t.ExpiresAt, t.Fingerprint, t.IP, t.UserAgent, time.Now()); err != nil {
		return errors.Wrap(err, "failed to insert into table RefreshTokens")
	}

	return nil
}

// RefreshToken returns the record for the opaque token value.
func (d *PostgresDriver) RefreshToken(ctx context.Context, token string) (*dbtypes.RefreshToken, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		SELECT
			"Token", "UserId", "ActiveRole", "ExpiresAt", "Used", "UsedAt", "Revoked", "RevokedAt", "RevokedReason", "Fingerprint", "Ip", "UserAgent", "CreatedAt"
		FROM "RefreshTokens"
		WHERE "Token" = $1`

	t := &dbtypes.RefreshToken{}
	if err := pgxscan.Get(ctx, d.conn, t, query, token); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "refresh token")
		}

		return nil, errors.Wrap(err, "failed to scan row for refresh token")
	}

	return t, nil
}

// MarkRefreshTokenUsed flips used=true with a conditional update so exactly
// one of any number of concurrent rotation attempts can win. The losing side
// must be treated as a reuse event by the caller.
func (d *PostgresDriver) MarkRefreshTokenUsed(ctx context.Context, token string) (bool, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		UPDATE "RefreshTokens" SET "Used" = TRUE, "UsedAt" = $1
		WHERE "Token" = $2 AND "Used" = FALSE AND "Revoked" = FALSE`

	res, err := d.conn.Exec(ctx, query, time.Now(), token)
	if err != nil {
		return false, errors.Wrap(err, "failed to mark refresh token used")
	}

	return res.RowsAffected() == 1, nil
}

// RevokeRefreshToken revokes a single token.
func (d *PostgresDriver) RevokeRefreshToken(ctx context.Context, token, reason string) error {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		UPDATE "RefreshTokens" SET "Revoked" = TRUE, "RevokedAt" = $1, "RevokedReason" = $2
		WHERE "Token" = $3 AND "Revoked" = FALSE`

	if _, err := d.conn.Exec(ctx, query, time.Now(), reason, token); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// RevokeAllRefreshTokens revokes every non-revoked token owned by the user
// in a single statement and returns how many were revoked.
func (d *PostgresDriver) RevokeAllRefreshTokens(ctx context.Context, userID ccc.UUID, reason string) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		UPDATE "RefreshTokens" SET "Revoked" = TRUE, "RevokedAt" = $1, "RevokedReason" = $2
		WHERE "UserId" = $3 AND "Revoked" = FALSE`

	res, err := d.conn.Exec(ctx, query, time.Now(), reason, userID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to revoke refresh tokens for user %s", userID)
	}

	return res.RowsAffected(), nil
}
