package limiter_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/JerryTarus/secure-s3-upload/internal/pkg/limiter"
)

func TestGetLimiterReusesPerIP(t *testing.T) {
	l := limiter.NewIPRateLimiter(rate.Limit(1), 1)

	first := l.GetLimiter("203.0.113.10")
	again := l.GetLimiter("203.0.113.10")
	other := l.GetLimiter("203.0.113.11")

	assert.Same(t, first, again)
	assert.NotSame(t, first, other)
}

func TestMiddlewareLimitsBurst(t *testing.T) {
	l := limiter.NewIPRateLimiter(rate.Limit(0.01), 2)

	served := 0
	wrapped := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.WriteHeader(http.StatusNoContent)
	}))

	var last *httptest.ResponseRecorder
	for range 3 {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/presign", nil)
		req.RemoteAddr = "203.0.113.20:4242"
		wrapped.ServeHTTP(last, req)
	}

	assert.Equal(t, 2, served)
	require.Equal(t, http.StatusTooManyRequests, last.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &errBody))
	assert.Equal(t, "Too many requests. Please try again later.", errBody["error"])
	assert.Equal(t, "*", last.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type", last.Header().Get("Access-Control-Allow-Headers"))
}
