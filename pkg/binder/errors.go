package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrMissingContentType   = errors.New("missing content type")

	// ErrBinderNotApplicable tells handler.Wrap to skip the binder because
	// the request carries nothing it can read.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
