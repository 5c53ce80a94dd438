package jwt

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDFunc generates a unique token identifier (jti).
type IDFunc func() string

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}

// ULID returns a lexicographically sortable identifier. Useful when
// revocation records should sort by issue time in the backing store.
func ULID() string {
	return ulid.Make().String()
}

// IDFuncByName maps a configuration value ("uuid" or "ulid") to a generator.
// An empty name selects UUID.
func IDFuncByName(name string) (IDFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uuid":
		return UUID, nil
	case "ulid":
		return ULID, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDFormat, name)
	}
}
