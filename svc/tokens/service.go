package tokens

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/tokensvc/pkg/jwt"
	"github.com/dmitrymomot/tokensvc/pkg/logger"
	"github.com/dmitrymomot/tokensvc/pkg/payload"
	"github.com/dmitrymomot/tokensvc/pkg/revocation"
)

// Signer issues and verifies tokens. *jwt.Signer implements it.
type Signer interface {
	Sign(p *payload.Object, exp time.Time) (string, error)
	Verify(token string) (*payload.Object, error)
	Lifetime() time.Duration
	Now() time.Time
}

// Renderer turns a token string into an image. *qrcode.Renderer implements it.
type Renderer interface {
	Render(ctx context.Context, content string) ([]byte, error)
}

// Option configures a Service.
type Option func(*Service)

// WithRenderer enables CreateImage and RenewImage.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}

// WithLogger sets the service logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// Service drives the token lifecycle: create, validate, renew and invalidate.
//
// Every call re-runs the gate chain against the token string:
//
//	well formed -> signature valid -> not expired -> not revoked
//
// The only state shared between calls lives in the revocation store.
type Service struct {
	signer   Signer
	store    revocation.Store
	renderer Renderer
	log      *slog.Logger
}

// NewService creates a Service.
func NewService(signer Signer, store revocation.Store, opts ...Option) (*Service, error) {
	if signer == nil {
		return nil, ErrMissingSigner
	}
	if store == nil {
		return nil, ErrMissingStore
	}

	s := &Service{
		signer: signer,
		store:  store,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("tokens"))

	return s, nil
}

// Lifetime returns the lifetime given to new tokens and revocation records.
func (s *Service) Lifetime() time.Duration {
	return s.signer.Lifetime()
}

// Create signs p, which must be a non-empty object, with a fresh jti and
// an expiry of now + Lifetime.
func (s *Service) Create(ctx context.Context, p payload.Value) (string, error) {
	obj, ok := p.AsObject()
	if !ok || obj == nil || obj.Len() == 0 {
		return "", ErrInvalidPayload
	}

	token, err := s.signer.Sign(obj, s.expiry())
	if err != nil {
		s.log.ErrorContext(ctx, "failed to sign token", logger.Operation("create"), logger.Error(err))
		return "", err
	}

	s.log.DebugContext(ctx, "token created", logger.Operation("create"))
	return token, nil
}

// Validate reports whether token passes every gate. It never returns the
// reason; use Inspect for that.
func (s *Service) Validate(ctx context.Context, token string) bool {
	_, _, err := s.check(ctx, token)
	return err == nil
}

// Inspect runs the same checks as Validate and returns the first failure.
func (s *Service) Inspect(ctx context.Context, token string) error {
	_, _, err := s.check(ctx, token)
	return err
}

// Renew issues a new token carrying the claims of token with a fresh
// expiry and jti. The old token stays valid.
func (s *Service) Renew(ctx context.Context, token string) (string, error) {
	claims, jti, err := s.check(ctx, token)
	if err != nil {
		return "", err
	}

	claims.Delete(jwt.ClaimExpiresAt)
	claims.Delete(jwt.ClaimID)

	renewed, err := s.signer.Sign(claims, s.expiry())
	if err != nil {
		s.log.ErrorContext(ctx, "failed to sign renewed token",
			logger.Operation("renew"), logger.TokenID(jti), logger.Error(err))
		return "", err
	}

	s.log.DebugContext(ctx, "token renewed", logger.Operation("renew"), logger.TokenID(jti))
	return renewed, nil
}

// Invalidate revokes token for the rest of its lifetime. Invalidating an
// already revoked token fails with ErrRevokedToken. Nothing is written
// when token fails any check.
func (s *Service) Invalidate(ctx context.Context, token string) error {
	_, jti, err := s.check(ctx, token)
	if err != nil {
		return err
	}

	if err := s.store.MarkRevoked(ctx, jti, s.signer.Lifetime()); err != nil {
		s.log.ErrorContext(ctx, "failed to revoke token",
			logger.Operation("invalidate"), logger.TokenID(jti), logger.Error(err))
		return err
	}

	s.log.InfoContext(ctx, "token invalidated", logger.Operation("invalidate"), logger.TokenID(jti))
	return nil
}

// CreateImage is Create followed by rendering the token.
func (s *Service) CreateImage(ctx context.Context, p payload.Value) ([]byte, error) {
	token, err := s.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, token)
}

// RenewImage is Renew followed by rendering the new token.
func (s *Service) RenewImage(ctx context.Context, token string) ([]byte, error) {
	renewed, err := s.Renew(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, renewed)
}

// check is the gate chain. Format, signature and expiry are the signer's
// gates; revocation is checked last so a forged jti never reaches the store.
func (s *Service) check(ctx context.Context, token string) (*payload.Object, string, error) {
	claims, err := s.signer.Verify(token)
	if err != nil {
		return nil, "", err
	}

	jti, ok := jwt.TokenID(claims)
	if !ok {
		return nil, "", jwt.ErrInvalidClaims
	}

	revoked, err := s.store.IsRevoked(ctx, jti)
	if err != nil {
		s.log.ErrorContext(ctx, "revocation lookup failed", logger.TokenID(jti), logger.Error(err))
		return nil, "", err
	}
	if revoked {
		return nil, "", ErrRevokedToken
	}

	return claims, jti, nil
}

func (s *Service) render(ctx context.Context, token string) ([]byte, error) {
	if s.renderer == nil {
		return nil, errors.Join(ErrRender, errors.New("no renderer configured"))
	}

	img, err := s.renderer.Render(ctx, token)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render token", logger.Error(err))
		return nil, errors.Join(ErrRender, err)
	}
	return img, nil
}

func (s *Service) expiry() time.Time {
	return s.signer.Now().Add(s.signer.Lifetime())
}
