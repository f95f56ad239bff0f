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

const userColumns = `"Id", "ProviderSubject", "Email", "EmailVerified", "GivenName", "FamilyName", "Roles", "PasswordChangedAt", "CreatedAt", "UpdatedAt"`

// UserByID returns the user with the given local id.
func (d *PostgresDriver) UserByID(ctx context.Context, id ccc.UUID) (*dbtypes.User, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		SELECT ` + userColumns + `
		FROM "Users"
		WHERE "Id" = $1`

	u := &dbtypes.User{}
	if err := pgxscan.Get(ctx, d.conn, u, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "user %s", id)
		}

		return nil, errors.Wrapf(err, "failed to scan row for user %s", id)
	}

	return u, nil
}

// UserByProviderSubject returns the user bound to the provider subject.
func (d *PostgresDriver) UserByProviderSubject(ctx context.Context, subject string) (*dbtypes.User, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		SELECT ` + userColumns + `
		FROM "Users"
		WHERE "ProviderSubject" = $1`

	u := &dbtypes.User{}
	if err := pgxscan.Get(ctx, d.conn, u, query, subject); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "user with subject %s", subject)
		}

		return nil, errors.Wrapf(err, "failed to scan row for subject %s", subject)
	}

	return u, nil
}

// UserByEmail returns the user with the given email.
func (d *PostgresDriver) UserByEmail(ctx context.Context, email string) (*dbtypes.User, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		SELECT ` + userColumns + `
		FROM "Users"
		WHERE "Email" = $1`

	u := &dbtypes.User{}
	if err := pgxscan.Get(ctx, d.conn, u, query, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "user by email")
		}

		return nil, errors.Wrap(err, "failed to scan row for user by email")
	}

	return u, nil
}

// CreateUser inserts a new user and returns the stored record.
func (d *PostgresDriver) CreateUser(ctx context.Context, u *dbtypes.User) (*dbtypes.User, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	id, err := ccc.NewUUID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate UUID for user")
	}

	now := time.Now()
	query := `
		INSERT INTO "Users"
			("Id", "ProviderSubject", "Email", "EmailVerified", "GivenName", "FamilyName", "Roles", "CreatedAt", "UpdatedAt")
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	if _, err := d.conn.Exec(ctx, query, id, u.ProviderSubject, u.Email, u.EmailVerified, u.GivenName, u.FamilyName, u.Roles, now); err != nil {
		return nil, errors.Wrap(err, "failed to insert into table Users")
	}

	stored := *u
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now

	return &stored, nil
}

// BindProviderSubject attaches a provider subject to an existing user.
func (d *PostgresDriver) BindProviderSubject(ctx context.Context, id ccc.UUID, subject string) error {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		UPDATE "Users" SET "ProviderSubject" = $1, "UpdatedAt" = $2
		WHERE "Id" = $3`

	res, err := d.conn.Exec(ctx, query, subject, time.Now(), id)
	if err != nil {
		return errors.Wrapf(err, "failed to bind subject for user %s", id)
	}
	if res.RowsAffected() != 1 {
		return errors.Wrapf(ErrNotFound, "user %s", id)
	}

	return nil
}

// SyncProfile updates the mutable profile fields.
func (d *PostgresDriver) SyncProfile(ctx context.Context, id ccc.UUID, email string, emailVerified bool, givenName, familyName string) error {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		UPDATE "Users" SET "Email" = $1, "EmailVerified" = $2, "GivenName" = $3, "FamilyName" = $4, "UpdatedAt" = $5
		WHERE "Id" = $6`

	res, err := d.conn.Exec(ctx, query, email, emailVerified, givenName, familyName, time.Now(), id)
	if err != nil {
		return errors.Wrapf(err, "failed to sync profile for user %s", id)
	}
	if res.RowsAffected() != 1 {
		return errors.Wrapf(ErrNotFound, "user %s", id)
	}

	return nil
}

// GrantRole adds a role to the user's held set if not already present.
func (d *PostgresDriver) GrantRole(ctx context.Context, id ccc.UUID, role string) error {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		UPDATE "Users" SET "Roles" = array_append("Roles", $1), "UpdatedAt" = $2
		WHERE "Id" = $3 AND NOT ($1 = ANY("Roles"))`

	if _, err := d.conn.Exec(ctx, query, role, time.Now(), id); err != nil {
		return errors.Wrapf(err, "failed to grant role %s to user %s", role, id)
	}

	return nil
}

// SetPasswordChangedAt stamps the password-changed timestamp.
func (d *PostgresDriver) SetPasswordChangedAt(ctx context.Context, id ccc.UUID, at time.Time) error {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := `
		UPDATE "Users" SET "PasswordChangedAt" = $1, "UpdatedAt" = $1
		WHERE "Id" = $2`

	res, err := d.conn.Exec(ctx, query, at, id)
	if err != nil {
		return errors.Wrapf(err, "failed to stamp password change for user %s", id)
	}
	if res.RowsAffected() != 1 {
		return errors.Wrapf(ErrNotFound, "user %s", id)
	}

	return nil
}
