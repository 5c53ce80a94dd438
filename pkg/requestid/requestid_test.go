package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokensvc/pkg/requestid"
)

func serve(t *testing.T, header string) (string, string) {
	t.Helper()

	var fromCtx string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec.Header().Get(requestid.Header), fromCtx
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id", func(t *testing.T) {
		t.Parallel()

		header, fromCtx := serve(t, "")
		require.NotEmpty(t, header)
		assert.Equal(t, header, fromCtx)
		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("reuses valid id", func(t *testing.T) {
		t.Parallel()

		header, fromCtx := serve(t, "req_123-abc")
		assert.Equal(t, "req_123-abc", header)
		assert.Equal(t, "req_123-abc", fromCtx)
	})

	t.Run("replaces invalid id", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"has space", "semi;colon", strings.Repeat("a", 129)} {
			header, _ := serve(t, bad)
			assert.NotEqual(t, bad, header)
			_, err := uuid.Parse(header)
			assert.NoError(t, err)
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck
	assert.Equal(t, "id", requestid.FromContext(requestid.WithContext(context.Background(), "id")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	ex := requestid.LoggerExtractor()

	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(requestid.WithContext(context.Background(), "id"))
	assert.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "id", attr.Value.String())
}
