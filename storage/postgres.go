package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the subset of the pgx connection API the driver needs. Both
// *pgxpool.Pool and pgx.Tx satisfy it.
type Queryer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var (
	_ UserStore         = &PostgresDriver{}
	_ RefreshTokenStore = &PostgresDriver{}
	_ AuditStore        = &PostgresDriver{}
)

// PostgresDriver implements the repository interfaces against PostgreSQL.
type PostgresDriver struct {
	conn Queryer
}

// NewPostgresDriver creates a PostgresDriver.
func NewPostgresDriver(conn Queryer) *PostgresDriver {
	return &PostgresDriver{conn: conn}
}
