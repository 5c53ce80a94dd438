// Command tokensvc serves the token lifecycle API over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/tokensvc/pkg/config"
	"github.com/dmitrymomot/tokensvc/pkg/httpserver"
	"github.com/dmitrymomot/tokensvc/pkg/jwt"
	"github.com/dmitrymomot/tokensvc/pkg/logger"
	"github.com/dmitrymomot/tokensvc/pkg/qrcode"
	"github.com/dmitrymomot/tokensvc/pkg/ratelimiter"
	redisconn "github.com/dmitrymomot/tokensvc/pkg/redis"
	"github.com/dmitrymomot/tokensvc/pkg/requestid"
	"github.com/dmitrymomot/tokensvc/pkg/revocation"
	"github.com/dmitrymomot/tokensvc/svc/tokens"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"tokensvc"`
	LogLevel    string `env:"LOG_LEVEL"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tokensvc:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, app.ServiceName),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	var cfg tokens.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	signer, err := newSigner(cfg)
	if err != nil {
		return err
	}

	level, err := qrcode.ParseRecoveryLevel(cfg.QRCodeRecovery)
	if err != nil {
		return err
	}
	renderer := qrcode.NewRenderer(qrcode.WithSize(cfg.QRCodeSize), qrcode.WithRecoveryLevel(level))

	b, err := newBackends(ctx, cfg, log)
	if err != nil {
		return err
	}

	limiter, err := ratelimiter.NewBucket(b.limits, ratelimiter.PerInterval(cfg.RateLimitRequests, cfg.RateLimitInterval))
	if err != nil {
		b.close()
		return err
	}

	svc, err := tokens.NewService(signer, b.revocations,
		tokens.WithRenderer(renderer),
		tokens.WithLogger(log),
	)
	if err != nil {
		b.close()
		return err
	}

	router := tokens.NewRouter(svc,
		tokens.WithRouterLogger(log),
		tokens.WithRateLimiter(limiter),
		tokens.WithClientIPResolver(cfg.ClientIPResolver()),
		tokens.WithReadinessChecks(b.checks...),
	)

	log.Info("starting token service",
		slog.String("revocation_backend", cfg.RevocationBackend),
		slog.String("token_id_format", cfg.IDFormat),
		slog.Duration("token_lifetime", cfg.Lifetime),
		slog.Int("qr_code_size", renderer.Size()),
		slog.Any("trusted_ip_headers", cfg.TrustedIPHeaders),
	)

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(b.close),
	)
	return srv.Run(ctx, router)
}

func newSigner(cfg tokens.Config) (*jwt.Signer, error) {
	if cfg.Lifetime <= 0 {
		return nil, fmt.Errorf("TOKEN_LIFETIME must be positive, got %s", cfg.Lifetime)
	}
	idFunc, err := jwt.IDFuncByName(cfg.IDFormat)
	if err != nil {
		return nil, err
	}
	return jwt.NewFromString(cfg.Secret, jwt.WithLifetime(cfg.Lifetime), jwt.WithIDFunc(idFunc))
}

type backends struct {
	revocations revocation.Store
	limits      ratelimiter.Store
	checks      []func(context.Context) error
	closers     []func() error
}

func (b *backends) close() {
	for _, c := range b.closers {
		_ = c()
	}
}

// newBackends builds the revocation and rate limit stores. Both share the
// backend so every instance behind a balancer sees the same state.
func newBackends(ctx context.Context, cfg tokens.Config, log *slog.Logger) (*backends, error) {
	switch cfg.RevocationBackend {
	case tokens.BackendMemory:
		revocations := revocation.NewMemoryStore(revocation.WithCleanupInterval(cfg.RevocationCleanupInterval))
		limits := ratelimiter.NewMemoryStore()
		return &backends{
			revocations: revocations,
			limits:      limits,
			closers:     []func() error{revocations.Close, limits.Close},
		}, nil

	case tokens.BackendRedis:
		var redisCfg redisconn.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		client, err := redisconn.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		log.Info("connected to redis", logger.Component("redis"))

		return &backends{
			revocations: revocation.NewRedisStore(client, revocation.WithKeyPrefix(cfg.RevocationKeyPrefix)),
			limits:      ratelimiter.NewRedisStore(client),
			checks:      []func(context.Context) error{redisconn.Healthcheck(client)},
			closers:     []func() error{client.Close},
		}, nil

	default:
		return nil, fmt.Errorf("unknown REVOCATION_BACKEND %q", cfg.RevocationBackend)
	}
}
