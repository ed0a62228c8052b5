package http

import (
	"net/http"

	"click-gateway/internal/conf"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet is http delivery providers.
var ProviderSet = wire.NewSet(
	ProvideFingerprintExtractor,
	ProvideRateLimiter,
	ProvideHandler,
	NewRouter,
	NewServer,
)

func ProvideFingerprintExtractor(c *conf.Config) *FingerprintExtractor {
	return NewFingerprintExtractor(c.Gateway.IPHeaders)
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(c *conf.Config, extractor *FingerprintExtractor) (*RateLimiter, func()) {
	if c.RateLimit.PerMinute <= 0 {
		return nil, func() {}
	}
	rl := NewRateLimiter(c.RateLimit.PerMinute, extractor)
	return rl, rl.Stop
}

func ProvideHandler(c *conf.Config, engine Engine, extractor *FingerprintExtractor, logger *zap.Logger) *Handler {
	return NewHandler(engine, extractor, c.Gateway.RedirectStatus, logger)
}

// NewServer creates the HTTP server for router.
func NewServer(c *conf.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         c.Server.Addr,
		Handler:      router,
		ReadTimeout:  c.Server.ReadTimeout,
		WriteTimeout: c.Server.WriteTimeout,
	}
}
