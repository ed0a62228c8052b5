//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"click-gateway/internal/conf"
	"click-gateway/internal/gateway/audit"
	"click-gateway/internal/gateway/classifier"
	httpdelivery "click-gateway/internal/gateway/delivery/http"
	"click-gateway/internal/gateway/usecase"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init the gateway application.
func wireApp(*conf.Config, *zap.Logger) (*app, func(), error) {
	panic(wire.Build(
		classifier.ProviderSet,
		audit.ProviderSet,
		usecase.ProviderSet,
		httpdelivery.ProviderSet,
		wire.Bind(new(httpdelivery.Engine), new(*usecase.DecisionEngine)),
		newApp,
	))
}
