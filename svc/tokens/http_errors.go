package tokens

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/tokensvc/handler"
	"github.com/dmitrymomot/tokensvc/pkg/jwt"
)

// User-facing messages.
const (
	MsgGenerated        = "Token has been generated"
	MsgValid            = "Token is valid"
	MsgRenewed          = "Token renewed successfully"
	MsgInvalidated      = "Token has been invalidated"
	MsgExpired          = "Signature has expired"
	MsgInvalidSignature = "Signature verification failed"
	MsgWrongAlgorithm   = "Expected a different algorithm"
	MsgInvalidSegment   = "Invalid segment encoding"
	MsgInvalidFormat    = "Token is not in a valid JWT format"
	MsgInvalidPayload   = "Payload must be a non-empty object"
	MsgMissingToken     = "Token is required"
	MsgUnsupported      = "Unsupported response format"
	MsgRenderFailed     = "Failed to generate QR code image"
	MsgEncodingFailed   = "Failed to encode token"
	MsgTooManyRequests  = "Too many requests, retry later"
)

var (
	errInvalidPayload    = handler.NewHTTPError(http.StatusBadRequest, "invalid_payload").WithMessage(MsgInvalidPayload)
	errMissingToken      = handler.NewHTTPError(http.StatusBadRequest, "missing_token").WithMessage(MsgMissingToken)
	errInvalidFormat     = handler.NewHTTPError(http.StatusBadRequest, "invalid_token_format").WithMessage(MsgInvalidFormat)
	errUnsupportedFormat = handler.NewHTTPError(http.StatusBadRequest, "unsupported_format").WithMessage(MsgUnsupported)
	errExpired           = handler.NewHTTPError(http.StatusUnprocessableEntity, "token_expired").WithMessage(MsgExpired)
	errRevoked           = handler.NewHTTPError(http.StatusUnprocessableEntity, "token_revoked").WithMessage(MsgInvalidated)
	errWrongAlgorithm    = handler.NewHTTPError(http.StatusUnprocessableEntity, "invalid_algorithm").WithMessage(MsgWrongAlgorithm)
	errInvalidSegment    = handler.NewHTTPError(http.StatusUnprocessableEntity, "invalid_segment").WithMessage(MsgInvalidSegment)
	errInvalidSignature  = handler.NewHTTPError(http.StatusUnprocessableEntity, "invalid_signature").WithMessage(MsgInvalidSignature)
	errRender            = handler.NewHTTPError(http.StatusUnprocessableEntity, "render_failed").WithMessage(MsgRenderFailed)
	errEncoding          = handler.NewHTTPError(http.StatusUnprocessableEntity, "encoding_failed").WithMessage(MsgEncodingFailed)
	errTooManyRequests   = handler.ErrTooManyRequests.WithMessage(MsgTooManyRequests)
)

// toHTTPError classifies lifecycle errors for the client. Unknown errors
// are returned as is and end up as 500.
func toHTTPError(err error) error {
	var httpErr handler.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	// Signature variants wrap jwt.ErrInvalidSignature and must be matched first.
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return errInvalidPayload.Wrap(err)
	case errors.Is(err, jwt.ErrMissingToken):
		return errMissingToken.Wrap(err)
	case errors.Is(err, jwt.ErrMalformedToken):
		return errInvalidFormat.Wrap(err)
	case errors.Is(err, jwt.ErrExpiredToken):
		return errExpired.Wrap(err)
	case errors.Is(err, ErrRevokedToken):
		return errRevoked.Wrap(err)
	case errors.Is(err, jwt.ErrUnexpectedAlgorithm):
		return errWrongAlgorithm.Wrap(err)
	case errors.Is(err, jwt.ErrInvalidSegment):
		return errInvalidSegment.Wrap(err)
	case errors.Is(err, jwt.ErrInvalidSignature):
		return errInvalidSignature.Wrap(err)
	case errors.Is(err, ErrRender):
		return errRender.Wrap(err)
	case errors.Is(err, jwt.ErrEncoding):
		return errEncoding.Wrap(err)
	default:
		return err
	}
}
