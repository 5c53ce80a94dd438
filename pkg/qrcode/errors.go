package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrGenerationFailed is returned when the underlying encoder fails, for
	// example because the content does not fit the chosen recovery level.
	ErrGenerationFailed = errors.New("qrcode: failed to generate QR code")
	// ErrUnknownRecoveryLevel is returned by ParseRecoveryLevel.
	ErrUnknownRecoveryLevel = errors.New("qrcode: unknown recovery level")
)
