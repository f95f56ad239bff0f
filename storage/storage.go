// Package storage defines the repository interfaces for the auth core's
// durable state and provides the PostgreSQL driver.
package storage

import (
	"errors"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")
