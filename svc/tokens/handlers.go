package tokens

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/tokensvc/handler"
	"github.com/dmitrymomot/tokensvc/pkg/clientip"
	"github.com/dmitrymomot/tokensvc/pkg/jwt"
	"github.com/dmitrymomot/tokensvc/pkg/logger"
	"github.com/dmitrymomot/tokensvc/pkg/payload"
)

// Response formats accepted by create and renew.
const (
	FormatJSON = "json"
	FormatQR   = "qr"
)

type createRequest struct {
	Token struct {
		Payload *payload.Value `json:"payload"`
	} `json:"token"`
	Format string `json:"format" query:"format"`
}

type tokenRequest struct {
	Token  string `json:"token" query:"token"`
	Format string `json:"format" query:"format"`
}

type validateRequest struct{}

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type validateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// Used when the request did not bind a token.
var extractToken = jwt.ChainExtractors(jwt.QueryTokenExtractor("token"), jwt.BearerTokenExtractor)

// Handlers exposes a Service over HTTP.
type Handlers struct {
	svc     *Service
	log     *slog.Logger
	onError handler.ErrorHandler[handler.Context]
}

// NewHandlers creates the HTTP handlers for svc.
func NewHandlers(svc *Service, log *slog.Logger) *Handlers {
	if log == nil {
		log = logger.Discard()
	}
	return &Handlers{
		svc:     svc,
		log:     log,
		onError: handler.NewErrorHandler(log),
	}
}

// Create handles POST /tokens.
func (h *Handlers) Create(ctx handler.Context, req createRequest) handler.Response {
	format, err := responseFormat(req.Format)
	if err != nil {
		return handler.Error(err)
	}

	p := payload.Null()
	if req.Token.Payload != nil {
		p = *req.Token.Payload
	}

	if format == FormatQR {
		img, err := h.svc.CreateImage(ctx, p)
		if err != nil {
			return handler.Error(toHTTPError(err))
		}
		return handler.Blob("image/png", img)
	}

	token, err := h.svc.Create(ctx, p)
	if err != nil {
		return handler.Error(toHTTPError(err))
	}
	return handler.JSON(tokenResponse{Token: token, Message: MsgGenerated})
}

// Validate handles GET /validate. Invalid tokens are a 200 with valid=false;
// only a missing token or an unclassified failure is an error.
func (h *Handlers) Validate(ctx handler.Context, _ validateRequest) handler.Response {
	token, err := extractToken(ctx.Request())
	if err != nil {
		return handler.Error(toHTTPError(err))
	}

	if err := h.svc.Inspect(ctx, token); err != nil {
		var httpErr handler.HTTPError
		if !errors.As(toHTTPError(err), &httpErr) {
			return handler.Error(err)
		}
		return handler.JSON(validateResponse{
			Valid:   false,
			Message: httpErr.Message,
			Reason:  httpErr.Key,
		})
	}

	return handler.JSON(validateResponse{Valid: true, Message: MsgValid})
}

// Renew handles POST /renew.
func (h *Handlers) Renew(ctx handler.Context, req tokenRequest) handler.Response {
	format, err := responseFormat(req.Format)
	if err != nil {
		return handler.Error(err)
	}

	token, err := requestToken(ctx.Request(), req.Token)
	if err != nil {
		return handler.Error(toHTTPError(err))
	}

	if format == FormatQR {
		img, err := h.svc.RenewImage(ctx, token)
		if err != nil {
			return handler.Error(toHTTPError(err))
		}
		return handler.Blob("image/png", img)
	}

	renewed, err := h.svc.Renew(ctx, token)
	if err != nil {
		return handler.Error(toHTTPError(err))
	}
	return handler.JSON(tokenResponse{Token: renewed, Message: MsgRenewed})
}

// Invalidate handles DELETE /tokens.
func (h *Handlers) Invalidate(ctx handler.Context, req tokenRequest) handler.Response {
	token, err := requestToken(ctx.Request(), req.Token)
	if err != nil {
		return handler.Error(toHTTPError(err))
	}

	if err := h.svc.Invalidate(ctx, token); err != nil {
		return handler.Error(toHTTPError(err))
	}
	return handler.Empty()
}

func requestToken(r *http.Request, bound string) (string, error) {
	if bound != "" {
		return bound, nil
	}
	return extractToken(r)
}

func responseFormat(format string) (string, error) {
	switch format {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatQR:
		return FormatQR, nil
	default:
		return "", errUnsupportedFormat
	}
}

// logOperation logs every handled request at debug level.
func logOperation[R any](log *slog.Logger, op string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "request handled",
				logger.Operation(op),
				logger.ClientIP(clientip.FromContext(ctx)),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}

func wrap[R any](h *Handlers, op string, fn handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(fn,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](h.onError),
		handler.WithDecorators(logOperation[R](h.log, op)),
	)
}
