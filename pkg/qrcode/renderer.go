package qrcode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge in pixels used when no size is specified.
const DefaultSize = 256

// RecoveryLevel is the error-correction level of the generated code.
type RecoveryLevel = skipqrcode.RecoveryLevel

const (
	Low     = skipqrcode.Low
	Medium  = skipqrcode.Medium
	High    = skipqrcode.High
	Highest = skipqrcode.Highest
)

// ParseRecoveryLevel maps "low", "medium", "high" or "highest" to a level.
// An empty string yields Medium.
func ParseRecoveryLevel(s string) (RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "", "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "highest":
		return Highest, nil
	default:
		return Medium, fmt.Errorf("%w: %q", ErrUnknownRecoveryLevel, s)
	}
}

// Renderer encodes strings as PNG QR codes. It is stateless and safe for
// concurrent use.
type Renderer struct {
	size  int
	level RecoveryLevel
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the PNG edge in pixels. Non-positive values keep the default.
func WithSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.size = size
		}
	}
}

// WithRecoveryLevel sets the error-correction level. Higher levels make
// denser codes and may fail for long content.
func WithRecoveryLevel(level RecoveryLevel) Option {
	return func(r *Renderer) {
		r.level = level
	}
}

// NewRenderer returns a Renderer producing DefaultSize codes at Medium
// recovery unless configured otherwise.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		size:  DefaultSize,
		level: Medium,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the configured PNG edge in pixels.
func (r *Renderer) Size() int { return r.size }

// Render returns content encoded as a PNG image.
func (r *Renderer) Render(ctx context.Context, content string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return generate(content, r.size, r.level)
}

func generate(content string, size int, level RecoveryLevel) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	png, err := skipqrcode.Encode(content, level, size)
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}
	return png, nil
}
