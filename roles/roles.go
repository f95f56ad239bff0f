// Package roles defines the closed set of application roles and the portal
// routing that hangs off them.
package roles

import (
	"github.com/go-playground/errors/v5"
)

// Role is an application role. The set is closed: adding a role means
// extending the constants below and every switch over them.
type Role string

const (
	Investor Role = "INVESTOR"
	Issuer   Role = "ISSUER"
	Admin    Role = "ADMIN"
)

// Parse maps a request-supplied role string to a Role. An empty string
// defaults to Investor, which is the public-facing portal.
func Parse(s string) (Role, error) {
	switch Role(s) {
	case Investor, Issuer, Admin:
		return Role(s), nil
	case "":
		return Investor, nil
	default:
		return "", errors.Newf("unknown role %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case Investor, Issuer, Admin:
		return true
	default:
		return false
	}
}

// Portals maps each role to the base URL of the front-end serving it.
type Portals map[Role]string

// URL returns the portal base URL for the given role, falling back to the
// Investor portal for an unmapped role.
func (p Portals) URL(r Role) string {
	if u, ok := p[r]; ok {
		return u
	}

	return p[Investor]
}

// Contains reports whether the role set held by a user includes r.
func Contains(held []Role, r Role) bool {
	for _, h := range held {
		if h == r {
			return true
		}
	}

	return false
}

// Strings converts a role slice for embedding in token claims.
func Strings(rs []Role) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// FromStrings parses a claim slice back into roles, dropping anything that is
// not a member of the closed set.
func FromStrings(ss []string) []Role {
	out := make([]Role, 0, len(ss))
	for _, s := range ss {
		r := Role(s)
		if r.Valid() {
			out = append(out, r)
		}
	}

	return out
}
