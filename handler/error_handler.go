package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/tokensvc/pkg/logger"
	"github.com/dmitrymomot/tokensvc/pkg/requestid"
)

func determineLogLevel(statusCode int) slog.Level {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler creates the JSON error handler. Every error is logged
// with the request id, then rendered as the error envelope.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := StatusCode(err)

		log.LogAttrs(r.Context(), determineLogLevel(status), "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
