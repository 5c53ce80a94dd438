package revocation

import (
	"context"
	"time"
)

// DefaultKeyPrefix namespaces revocation records in shared stores.
const DefaultKeyPrefix = "invalid_token:"

// Store is the capability the token engine needs from a revocation backend.
type Store interface {
	// MarkRevoked records jti as revoked for at most ttl.
	// Marking an already revoked jti is a no-op.
	MarkRevoked(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether jti has a live revocation record.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

func validate(jti string, ttl time.Duration) error {
	if jti == "" {
		return ErrEmptyTokenID
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	return nil
}
