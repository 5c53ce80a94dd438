package tokens

import "errors"

var (
	// ErrInvalidPayload is returned by Create when the payload is missing
	// or is not a non-empty object.
	ErrInvalidPayload = errors.New("tokens: payload must be a non-empty object")
	// ErrRevokedToken is returned when a token passed every other check but
	// its jti has been invalidated.
	ErrRevokedToken = errors.New("tokens: token has been invalidated")
	// ErrRender wraps any failure of the image renderer.
	ErrRender = errors.New("tokens: failed to render token image")

	ErrMissingSigner = errors.New("tokens: signer is required")
	ErrMissingStore  = errors.New("tokens: revocation store is required")
)
