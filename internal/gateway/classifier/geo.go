package classifier

import (
	"context"
	"strings"
	"time"

	"click-gateway/internal/gateway/domain"

	"go.uber.org/zap"
)

// MaxGeoTimeout bounds every geo lookup regardless of configuration.
const MaxGeoTimeout = 300 * time.Millisecond

// UnknownCountry is returned by resolvers that have no answer.
const UnknownCountry = "Unknown"

// GeoResolver maps a client address to an ISO 3166-1 alpha-2 country code.
type GeoResolver interface {
	ResolveCountry(ctx context.Context, ip string) (string, error)
}

// GeoResult is the advisory outcome of a geo check.
type GeoResult struct {
	Country  string
	Mismatch bool
}

// GeoGate compares the resolved client country against the campaign's geo
// parameter. Lookups that time out or fail never deny.
type GeoGate struct {
	resolver GeoResolver
	timeout  time.Duration
	logger   *zap.Logger
}

// NewGeoGate creates a gate. A nil resolver disables the check.
func NewGeoGate(resolver GeoResolver, timeout time.Duration, logger *zap.Logger) *GeoGate {
	if timeout <= 0 || timeout > MaxGeoTimeout {
		timeout = MaxGeoTimeout
	}
	return &GeoGate{resolver: resolver, timeout: timeout, logger: logger}
}

// Enabled reports whether a resolver is configured.
func (g *GeoGate) Enabled() bool {
	return g != nil && g.resolver != nil
}

type geoAnswer struct {
	country string
	err     error
}

// Check resolves ip and tests it against the expected country list.
// An empty expected list skips the lookup.
func (g *GeoGate) Check(ctx context.Context, ip, expected string) GeoResult {
	if !g.Enabled() || ip == "" {
		return GeoResult{}
	}
	allowed := parseCountryList(expected)
	if len(allowed) == 0 {
		return GeoResult{}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Buffered so the lookup goroutine never leaks when we stop waiting.
	answer := make(chan geoAnswer, 1)
	go func() {
		country, err := g.resolver.ResolveCountry(ctx, ip)
		answer <- geoAnswer{country: country, err: err}
	}()

	select {
	case <-ctx.Done():
		g.logger.Debug("geo lookup timed out", zap.String("ip", ip), zap.Duration("timeout", g.timeout))
		return GeoResult{}
	case a := <-answer:
		if a.err != nil {
			g.logger.Debug("geo lookup failed", zap.String("ip", ip), zap.Error(a.err))
			return GeoResult{}
		}
		country := strings.ToUpper(strings.TrimSpace(a.country))
		if country == "" || strings.EqualFold(country, UnknownCountry) {
			return GeoResult{}
		}
		_, ok := allowed[country]
		return GeoResult{Country: country, Mismatch: !ok}
	}
}

func parseCountryList(s string) map[string]struct{} {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[strings.ToUpper(f)] = struct{}{}
	}
	return out
}

// GeoDenyReason converts a geo result to a deny reason.
func GeoDenyReason(r GeoResult) domain.DenyReason {
	if r.Mismatch {
		return domain.ReasonGeoMismatch
	}
	return domain.ReasonNone
}
