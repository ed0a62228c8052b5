package usecase

import (
	"click-gateway/internal/conf"
	"click-gateway/internal/gateway/audit"
	"click-gateway/internal/gateway/classifier"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet is usecase providers.
var ProviderSet = wire.NewSet(ProvideDecisionEngine)

// ProvideDecisionEngine wires the engine from configuration.
func ProvideDecisionEngine(
	c *conf.Config,
	strategy classifier.Strategy,
	rule classifier.CombineRule,
	geo *classifier.GeoGate,
	emitter *audit.Emitter,
	logger *zap.Logger,
) *DecisionEngine {
	cfg := EngineConfig{
		BaseURL:         c.Gateway.BaseURL,
		Secret:          c.Gateway.Secret,
		AllowedParams:   c.Gateway.AllowedParams,
		CombineRule:     rule,
		SignatureLength: c.Gateway.SignatureLength,
	}
	return NewDecisionEngine(cfg, strategy, geo, emitter, logger)
}
