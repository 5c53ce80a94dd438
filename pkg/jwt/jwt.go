package jwt

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/tokensvc/pkg/payload"
)

const (
	// Algorithm is the only signing algorithm accepted by the Signer.
	Algorithm = "HS256"
	// DefaultLifetime is applied when Sign is called without an explicit expiry.
	DefaultLifetime = 30 * time.Second
)

// Three base64url segments: header.claims.signature
var tokenFormat = regexp.MustCompile(`^[\w-]+\.[\w-]+\.[\w-]+$`)

// Option configures a Signer.
type Option func(*Signer)

// WithLifetime sets the default token lifetime.
func WithLifetime(d time.Duration) Option {
	if d <= 0 {
		panic("WithLifetime: duration must be > 0")
	}
	return func(s *Signer) { s.lifetime = d }
}

// WithClock replaces time.Now for signing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDFunc replaces the jti generator.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Signer) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Signer issues and verifies HS256 tokens with a single shared secret.
// It holds no mutable state and is safe for concurrent use.
type Signer struct {
	key      []byte
	lifetime time.Duration
	now      func() time.Time
	newID    IDFunc
	parser   *jwtlib.Parser
}

// New creates a Signer for the given secret.
func New(secret []byte, opts ...Option) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Signer{
		key:      secret,
		lifetime: DefaultLifetime,
		now:      time.Now,
		newID:    UUID,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwtlib.NewParser(
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)

	return s, nil
}

// NewFromString is New for string secrets.
func NewFromString(secret string, opts ...Option) (*Signer, error) {
	return New([]byte(secret), opts...)
}

// Lifetime returns the default token lifetime.
func (s *Signer) Lifetime() time.Duration {
	return s.lifetime
}

// Now returns the signer's current time.
func (s *Signer) Now() time.Time {
	return s.now()
}

// Sign copies p, injects exp and a fresh jti, and signs the result.
// A zero exp means now + Lifetime. The caller's object is never modified.
func (s *Signer) Sign(p *payload.Object, exp time.Time) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: payload is nil", ErrEncoding)
	}
	if exp.IsZero() {
		exp = s.now().Add(s.lifetime)
	}

	c := p.Clone()
	c.Set(ClaimExpiresAt, payload.Int(exp.Unix()))
	c.Set(ClaimID, payload.String(s.newID()))

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims{obj: c}).SignedString(s.key)
	if err != nil {
		return "", errors.Join(ErrEncoding, err)
	}
	return token, nil
}

// Verify parses token and returns its full claim set, exp and jti included.
func (s *Signer) Verify(token string) (*payload.Object, error) {
	if !tokenFormat.MatchString(token) {
		return nil, ErrMalformedToken
	}

	c := &claims{}
	if _, err := s.parser.ParseWithClaims(token, c, s.keyFunc); err != nil {
		return nil, classify(err)
	}
	return c.obj, nil
}

func (s *Signer) keyFunc(t *jwtlib.Token) (any, error) {
	// Pin the algorithm: a token is only as strong as the method it names.
	if t.Method == nil || t.Method.Alg() != Algorithm {
		return nil, ErrUnexpectedAlgorithm
	}
	return s.key, nil
}

// classify maps library errors onto the package sentinels. Order matters:
// an expired token also carries ErrTokenInvalidClaims.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedAlgorithm), errors.Is(err, jwtlib.ErrTokenUnverifiable):
		return errors.Join(ErrUnexpectedAlgorithm, err)
	case errors.Is(err, jwtlib.ErrTokenMalformed):
		return errors.Join(ErrInvalidSegment, err)
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return errors.Join(ErrInvalidSignature, err)
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	case errors.Is(err, jwtlib.ErrTokenInvalidClaims):
		return errors.Join(ErrInvalidClaims, err)
	default:
		return errors.Join(ErrInvalidSignature, err)
	}
}
