package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"click-gateway/pkg/problemdetails"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// entry holds a rate limiter and last seen timestamp for cleanup
type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter provides per-IP rate limiting
type RateLimiter struct {
	limiters  map[string]*entry
	mu        sync.Mutex
	rateLimit rate.Limit
	burst     int
	extractor *FingerprintExtractor
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewRateLimiter creates a new rate limiter with the given requests per minute.
// Clients are keyed by the same address the classifier sees.
func NewRateLimiter(requestsPerMinute int, extractor *FingerprintExtractor) *RateLimiter {
	rl := &RateLimiter{
		limiters:  make(map[string]*entry),
		rateLimit: rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:     requestsPerMinute,
		extractor: extractor,
		stop:      make(chan struct{}),
	}
	rl.StartCleanup()
	return rl
}

// getLimiter returns the rate limiter for the given IP, creating one if it doesn't exist
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, exists := rl.limiters[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rateLimit, rl.burst)
		rl.limiters[ip] = &entry{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	e.lastSeen = time.Now()
	return e.limiter
}

// Middleware returns a middleware that enforces rate limiting
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := rl.getLimiter(rl.extractor.ClientIP(r))

		if !limiter.Allow() {
			resetTime := time.Now().Add(time.Minute).Unix()
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.burst))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime))

			problem := problemdetails.New(
				http.StatusTooManyRequests,
				problemdetails.TypeRateLimitExceeded,
				"Rate Limit Exceeded",
				"Too many requests. Please try again later.",
			)
			writeProblem(w, problem)
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.burst))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(limiter.Tokens())))

		next.ServeHTTP(w, r)
	})
}

// StartCleanup starts a background goroutine that cleans up old entries
func (rl *RateLimiter) StartCleanup() {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-rl.stop:
				return
			case <-ticker.C:
			}
			rl.mu.Lock()
			for ip, e := range rl.limiters {
				if time.Since(e.lastSeen) > time.Hour {
					delete(rl.limiters, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// SecurityHeaders sets the hardening headers sent with every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Content-Security-Policy", "frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// LoggerMiddleware returns a middleware that logs HTTP requests using Zap
func LoggerMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
