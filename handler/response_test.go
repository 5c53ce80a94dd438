package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokensvc/handler"
	"github.com/dmitrymomot/tokensvc/pkg/binder"
	"github.com/dmitrymomot/tokensvc/pkg/requestid"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	return w
}

func TestJSON(t *testing.T) {
	t.Parallel()

	w := render(t, handler.JSON(map[string]string{"token": "abc"}, handler.WithJSONMeta(map[string]any{"v": 1})))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"token":"abc"},"meta":{"v":1}}`, w.Body.String())

	w = render(t, handler.JSON("created", handler.WithJSONStatus(http.StatusCreated)))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "http error with message",
			err:    handler.NewHTTPError(http.StatusUnprocessableEntity, "token_expired").WithMessage("Signature has expired"),
			status: http.StatusUnprocessableEntity,
			body:   `{"error":{"code":"token_expired","message":"Signature has expired"}}`,
		},
		{
			name:   "http error defaults to status text",
			err:    handler.ErrNotFound,
			status: http.StatusNotFound,
			body:   `{"error":{"code":"not_found","message":"Not Found"}}`,
		},
		{
			name:   "wrapped http error",
			err:    fmt.Errorf("lookup: %w", handler.ErrServiceUnavailable),
			status: http.StatusServiceUnavailable,
			body:   `{"error":{"code":"service_unavailable","message":"Service Unavailable"}}`,
		},
		{
			name:   "binding error",
			err:    fmt.Errorf("%w: bad", binder.ErrFailedToParseJSON),
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown error hides details",
			err:    errors.New("database password is hunter2"),
			status: http.StatusInternalServerError,
			body:   `{"error":{"code":"internal_server_error","message":"An error occurred processing your request"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := render(t, handler.JSONError(tt.err))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.status, handler.StatusCode(tt.err))
			if tt.body == "" {
				assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
				return
			}
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}

	t.Run("JSON with an error value", func(t *testing.T) {
		t.Parallel()
		w := render(t, handler.JSON(handler.ErrBadRequest))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := handler.ErrUnprocessableEntity.WithMessage("nope").Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "unprocessable_entity: root cause", err.Error())
	assert.Equal(t, "unprocessable_entity", handler.ErrUnprocessableEntity.Error())
	assert.Empty(t, handler.ErrUnprocessableEntity.Message, "sentinel must not be mutated")
}

func TestEmptyAndBlob(t *testing.T) {
	t.Parallel()

	w := render(t, handler.Empty())
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = render(t, handler.EmptyWithStatus(http.StatusAccepted))
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = render(t, handler.Blob("image/png", []byte{0x89, 'P', 'N', 'G'}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "4", w.Header().Get("Content-Length"))

	w = render(t, handler.Blob("", []byte("raw")))
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		code  int
		level string
	}{
		{"client error logs warn", handler.ErrBadRequest, http.StatusBadRequest, "level=WARN"},
		{"server error logs error", errors.New("something went wrong"), http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))
			errorHandler := handler.NewErrorHandler(log)

			req := httptest.NewRequest(http.MethodGet, "/validate", nil)
			req = req.WithContext(requestid.WithContext(req.Context(), "req-123"))
			w := httptest.NewRecorder()

			errorHandler(handler.NewContext(w, req), tt.err)

			if w.Code != tt.code {
				t.Errorf("Expected status %d, got %d", tt.code, w.Code)
			}
			logged := buf.String()
			if !strings.Contains(logged, tt.level) {
				t.Errorf("Expected %q in log output, got %s", tt.level, logged)
			}
			if !strings.Contains(logged, "request_id=req-123") {
				t.Errorf("Expected request id in log output, got %s", logged)
			}
		})
	}

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.NewErrorHandler(nil)(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}
