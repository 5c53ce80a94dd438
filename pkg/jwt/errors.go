package jwt

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrEncoding          = errors.New("jwt: failed to encode token")
	ErrMalformedToken    = errors.New("jwt: token is not in a valid JWT format")
	ErrInvalidSignature  = errors.New("jwt: signature verification failed")
	ErrExpiredToken      = errors.New("jwt: signature has expired")
	ErrMissingToken      = errors.New("jwt: missing token")
	ErrUnknownIDFormat   = errors.New("jwt: unknown token id format")

	// Variants of ErrInvalidSignature.
	ErrInvalidSegment      = fmt.Errorf("%w: invalid segment encoding", ErrInvalidSignature)
	ErrUnexpectedAlgorithm = fmt.Errorf("%w: expected a different algorithm", ErrInvalidSignature)
	ErrInvalidClaims       = fmt.Errorf("%w: invalid claims", ErrInvalidSignature)
)
