package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpdelivery "click-gateway/internal/gateway/delivery/http"
	"click-gateway/pkg/problemdetails"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func newTestRateLimiter(t *testing.T, perMinute int) *httpdelivery.RateLimiter {
	rl := httpdelivery.NewRateLimiter(perMinute, httpdelivery.NewFingerprintExtractor(testHeaders))
	t.Cleanup(rl.Stop)
	return rl
}

// TestRateLimiter_Middleware_WithinLimit_Returns200 verifies requests within limit succeed
func TestRateLimiter_Middleware_WithinLimit_Returns200(t *testing.T) {
	handler := newTestRateLimiter(t, 100).Middleware(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "Request %d should succeed", i+1)
		assert.Equal(t, "100", rr.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Remaining"))
	}
}

// TestRateLimiter_Middleware_ExceedsLimit_Returns429 verifies rate limit enforcement
func TestRateLimiter_Middleware_ExceedsLimit_Returns429(t *testing.T) {
	handler := newTestRateLimiter(t, 2).Middleware(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if i < 2 {
			assert.Equal(t, http.StatusOK, rr.Code, "Request %d should succeed", i+1)
			continue
		}
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
		assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))

		var problem problemdetails.ProblemDetail
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
		assert.Equal(t, http.StatusTooManyRequests, problem.Status)
		assert.Contains(t, problem.Type, "rate-limit-exceeded")
	}
}

// TestRateLimiter_Middleware_KeysOnForwardedAddress verifies proxied clients are limited independently
func TestRateLimiter_Middleware_KeysOnForwardedAddress(t *testing.T) {
	handler := newTestRateLimiter(t, 1).Middleware(okHandler())

	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234" // same proxy
		req.Header.Set("CF-Connecting-IP", ip)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "client %s should succeed", ip)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("CF-Connecting-IP", "203.0.113.1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

// TestRateLimiter_Stop_Idempotent verifies Stop can be called twice
func TestRateLimiter_Stop_Idempotent(t *testing.T) {
	rl := httpdelivery.NewRateLimiter(10, httpdelivery.NewFingerprintExtractor(nil))
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

// TestSecurityHeaders verifies hardening headers are set on every response
func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	httpdelivery.SecurityHeaders(okHandler()).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "frame-ancestors 'none'", rr.Header().Get("Content-Security-Policy"))
	assert.Contains(t, rr.Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

// TestLoggerMiddleware_LogsRequest verifies one log line per request with the status
func TestLoggerMiddleware_LogsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := httpdelivery.LoggerMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
	assert.Equal(t, "/missing", entries[0].ContextMap()["path"])
}
