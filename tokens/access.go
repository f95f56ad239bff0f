package tokens

import (
	"errors"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	perrors "github.com/go-playground/errors/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidAccessToken indicates the access token failed validation.
var ErrInvalidAccessToken = errors.New("invalid access token")

// AccessClaims are the signed claims carried by an access token. Access
// tokens are stateless and never persisted.
type AccessClaims struct {
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	ActiveRole string   `json:"active_role"`
	jwt.RegisteredClaims
}

// HeldRoles returns the claim roles as the closed enum.
func (c *AccessClaims) HeldRoles() []roles.Role {
	return roles.FromStrings(c.Roles)
}

// signAccess mints an HS256 access token for the user.
func (e *Engine) signAccess(user *dbtypes.User, activeRole roles.Role) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Email:      user.Email,
		Roles:      user.Roles,
		ActiveRole: string(activeRole),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    e.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.accessTTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(e.signingKey)
	if err != nil {
		return "", perrors.Wrap(err, "jwt.Token.SignedString()")
	}

	return signed, nil
}

// ParseAccess verifies the token signature, issuer, and expiry.
func (e *Engine) ParseAccess(token string) (*AccessClaims, error) {
	if token == "" {
		return nil, ErrInvalidAccessToken
	}

	parsed, err := jwt.ParseWithClaims(token, &AccessClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidAccessToken
		}

		return e.signingKey, nil
	}, jwt.WithIssuer(e.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidAccessToken
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok {
		return nil, ErrInvalidAccessToken
	}

	return claims, nil
}
