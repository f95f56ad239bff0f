// dbtypes contains the row types shared by the storage driver packages.
package dbtypes

import (
	"time"

	"github.com/cccteam/ccc"
)

// User rows carry roles as raw strings; the roles package converts them back
// into the closed enum at the domain boundary.
type User struct {
	ID                ccc.UUID   `db:"Id"`
	ProviderSubject   string     `db:"ProviderSubject"`
	Email             string     `db:"Email"`
	EmailVerified     bool       `db:"EmailVerified"`
	GivenName         string     `db:"GivenName"`
	FamilyName        string     `db:"FamilyName"`
	Roles             []string   `db:"Roles"`
	PasswordChangedAt *time.Time `db:"PasswordChangedAt"`
	CreatedAt         time.Time  `db:"CreatedAt"`
	UpdatedAt         time.Time  `db:"UpdatedAt"`
}

type RefreshToken struct {
	Token         string     `db:"Token"`
	UserID        ccc.UUID   `db:"UserId"`
	ActiveRole    string     `db:"ActiveRole"`
	ExpiresAt     time.Time  `db:"ExpiresAt"`
	Used          bool       `db:"Used"`
	UsedAt        *time.Time `db:"UsedAt"`
	Revoked       bool       `db:"Revoked"`
	RevokedAt     *time.Time `db:"RevokedAt"`
	RevokedReason string     `db:"RevokedReason"`
	Fingerprint   string     `db:"Fingerprint"`
	IP            string     `db:"Ip"`
	UserAgent     string     `db:"UserAgent"`
	CreatedAt     time.Time  `db:"CreatedAt"`
}

type InsertRefreshToken struct {
	Token       string    `db:"Token"`
	UserID      ccc.UUID  `db:"UserId"`
	ActiveRole  string    `db:"ActiveRole"`
	ExpiresAt   time.Time `db:"ExpiresAt"`
	Fingerprint string    `db:"Fingerprint"`
	IP          string    `db:"Ip"`
	UserAgent   string    `db:"UserAgent"`
}

type AccessLog struct {
	ID        ccc.UUID          `db:"Id"`
	UserID    ccc.UUID          `db:"UserId"`
	Event     string            `db:"Event"`
	Portal    string            `db:"Portal"`
	IP        string            `db:"Ip"`
	UserAgent string            `db:"UserAgent"`
	Device    string            `db:"Device"`
	Success   bool              `db:"Success"`
	Metadata  map[string]string `db:"Metadata"`
	CreatedAt time.Time         `db:"CreatedAt"`
}
