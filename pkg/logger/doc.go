// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so that keys stay consistent across the service.
//
// New picks a JSON or text handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record. This is how request-scoped values such as the
// request id end up in log lines without being passed around explicitly:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "token revoked", logger.TokenID(jti), logger.Operation("invalidate"))
//
// Development environments get text output at debug level; staging and
// production get JSON at info level.
package logger
