package audit

import (
	"context"
	"net/http"
	"time"

	"click-gateway/internal/conf"

	dapr "github.com/dapr/go-sdk/client"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ProviderSet is audit providers.
var ProviderSet = wire.NewSet(ProvideEmitter)

// ProvideEmitter builds the emitter and its sinks. A sink whose transport
// cannot be set up is skipped with a warning; audit never stops the gateway
// from starting.
func ProvideEmitter(c *conf.Config, logger *zap.Logger) (*Emitter, func(), error) {
	opts := EmitterOptions{MaxInFlight: c.Audit.MaxInFlight, Timeout: c.Audit.Timeout}
	if !c.Audit.Enabled {
		return NewEmitter(nil, nil, logger, opts), func() {}, nil
	}

	var (
		sinks    []Sink
		cleanups []func()
	)

	if c.Audit.WebhookURL != "" {
		sinks = append(sinks, NewWebhookSink(c.Audit.WebhookURL, &http.Client{Timeout: c.Audit.Timeout}))
	}

	if c.Audit.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.Audit.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			// Keep the sink: writes fail and are logged until redis comes back.
			logger.Warn("audit redis unreachable at startup", zap.String("addr", c.Audit.RedisAddr), zap.Error(err))
		}
		sinks = append(sinks, NewRedisSink(rdb, c.Audit.RedisStream, c.Audit.RedisMaxLen))
		cleanups = append(cleanups, func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("failed to close audit redis client", zap.Error(err))
			}
		})
	}

	if c.Audit.Dapr {
		client, err := dapr.NewClient()
		if err != nil {
			logger.Warn("failed to create Dapr client, dapr audit sink disabled", zap.Error(err))
		} else {
			sinks = append(sinks, NewDaprSink(client, c.Audit.DaprPubsub, c.Audit.DaprTopic))
			cleanups = append(cleanups, client.Close)
		}
	}

	if c.Audit.Log || len(sinks) == 0 {
		sinks = append(sinks, NewLogSink(logger))
	}

	names := make([]string, len(sinks))
	for i, s := range sinks {
		names[i] = s.Name()
	}
	logger.Info("audit enabled", zap.Strings("sinks", names))

	emitter := NewEmitter(sinks, NewEnricher(), logger, opts)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	return emitter, cleanup, nil
}
