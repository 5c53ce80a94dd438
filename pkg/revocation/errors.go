package revocation

import "errors"

var (
	ErrEmptyTokenID     = errors.New("revocation: empty token id")
	ErrInvalidTTL       = errors.New("revocation: ttl must be positive")
	ErrStoreUnavailable = errors.New("revocation: store unavailable")
)
