package classifier

import (
	"fmt"
	"strings"

	"click-gateway/internal/conf"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet is classifier providers.
var ProviderSet = wire.NewSet(ProvideStrategy, ProvideCombineRule, ProvideGeoGate)

// ProvideStrategy builds the heuristic classifier from configuration.
func ProvideStrategy(c *conf.Config) (Strategy, error) {
	policy, err := ParseUAPolicy(c.Gateway.UAPolicy)
	if err != nil {
		return nil, err
	}
	prefixes := c.Gateway.DatacenterPrefixes
	if prefixes == nil {
		prefixes = DefaultDatacenterPrefixes
	}
	matcher, err := NewDatacenterMatcher(prefixes)
	if err != nil {
		return nil, err
	}
	return NewHeuristicClassifier(NewBotDetector(policy), matcher), nil
}

// ProvideCombineRule parses the configured combination rule.
func ProvideCombineRule(c *conf.Config) (CombineRule, error) {
	return ParseCombineRule(c.Gateway.CombineRule)
}

// ProvideGeoGate builds the optional geo gate. When geo checks are disabled
// the gate has no resolver and never denies.
func ProvideGeoGate(c *conf.Config, logger *zap.Logger) (*GeoGate, func(), error) {
	noop := func() {}
	if !c.Geo.Enabled {
		return NewGeoGate(nil, 0, logger), noop, nil
	}

	switch strings.ToLower(c.Geo.Provider) {
	case "", "maxmind":
		resolver, err := NewMaxMindResolver(c.Geo.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open geoip database: %w", err)
		}
		cleanup := func() {
			if err := resolver.Close(); err != nil {
				logger.Warn("failed to close geoip database", zap.Error(err))
			}
		}
		return NewGeoGate(resolver, c.Geo.Timeout, logger), cleanup, nil
	case "http":
		return NewGeoGate(NewHTTPResolver(c.Geo.Endpoint, nil), c.Geo.Timeout, logger), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown geo provider %q", c.Geo.Provider)
}
