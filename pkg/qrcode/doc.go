// Package qrcode renders short strings, typically signed tokens, as PNG
// QR code images.
//
// It wraps github.com/skip2/go-qrcode with input validation, a configurable
// edge size and error-correction level, and sentinel errors.
//
//	r := qrcode.NewRenderer(qrcode.WithSize(512), qrcode.WithRecoveryLevel(qrcode.High))
//	png, err := r.Render(ctx, token)
//	if errors.Is(err, qrcode.ErrEmptyContent) {
//		// nothing to encode
//	}
package qrcode
