package tokens

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/tokensvc/handler"
	"github.com/dmitrymomot/tokensvc/pkg/binder"
	"github.com/dmitrymomot/tokensvc/pkg/clientip"
	"github.com/dmitrymomot/tokensvc/pkg/httpserver"
	"github.com/dmitrymomot/tokensvc/pkg/logger"
	"github.com/dmitrymomot/tokensvc/pkg/ratelimiter"
	"github.com/dmitrymomot/tokensvc/pkg/requestid"
)

// RouterOption configures NewRouter.
type RouterOption func(*routerConfig)

type routerConfig struct {
	log        *slog.Logger
	limiter    ratelimiter.RateLimiter
	resolver   *clientip.Resolver
	readyCheck []func(context.Context) error
}

// WithRouterLogger sets the logger used by handlers and middleware.
func WithRouterLogger(l *slog.Logger) RouterOption {
	return func(c *routerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRateLimiter limits token endpoints per client IP.
// Health endpoints are never limited.
func WithRateLimiter(l ratelimiter.RateLimiter) RouterOption {
	return func(c *routerConfig) {
		c.limiter = l
	}
}

// WithClientIPResolver replaces the default resolver, which trusts no proxy
// headers and keys clients by their peer address.
func WithClientIPResolver(r *clientip.Resolver) RouterOption {
	return func(c *routerConfig) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithReadinessChecks adds probes to GET /health/ready.
func WithReadinessChecks(checks ...func(context.Context) error) RouterOption {
	return func(c *routerConfig) {
		c.readyCheck = append(c.readyCheck, checks...)
	}
}

// NewRouter mounts the token endpoints:
//
//	POST   /tokens    create
//	GET    /validate  validate
//	POST   /renew     renew
//	DELETE /tokens    invalidate
//	GET    /health/live, /health/ready
func NewRouter(svc *Service, opts ...RouterOption) http.Handler {
	cfg := &routerConfig{
		log:      logger.Discard(),
		resolver: clientip.New([]string{}...),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h := NewHandlers(svc, cfg.log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(cfg.resolver.Middleware)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(cfg.log, cfg.readyCheck...))

	r.Group(func(r chi.Router) {
		if cfg.limiter != nil {
			r.Use(rateLimit(cfg.limiter, cfg.log))
		}

		r.Post("/tokens", wrap[createRequest](h, "create", h.Create, binder.JSON(), binder.Query()))
		r.Delete("/tokens", wrap[tokenRequest](h, "invalidate", h.Invalidate, binder.Query(), binder.JSON()))
		r.Get("/validate", wrap[validateRequest](h, "validate", h.Validate))
		r.Post("/renew", wrap[tokenRequest](h, "renew", h.Renew, binder.Query(), binder.JSON()))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})

	return r
}

func rateLimit(limiter ratelimiter.RateLimiter, log *slog.Logger) func(http.Handler) http.Handler {
	key := ratelimiter.Composite(ratelimiter.Static("tokens"), ratelimiter.ByClientIP)
	return ratelimiter.Middleware(limiter, key,
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
			log.WarnContext(r.Context(), "rate limit exceeded",
				logger.ClientIP(clientip.FromContext(r.Context())),
				logger.Component("ratelimiter"),
			)
			_ = handler.JSONError(errTooManyRequests).Render(w, r)
		}),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "rate limiter failed",
				logger.Error(err),
				logger.Component("ratelimiter"),
			)
			_ = handler.JSONError(err).Render(w, r)
		}),
	)
}
