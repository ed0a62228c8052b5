package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"click-gateway/internal/conf"
	"click-gateway/internal/gateway/audit"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string
)

func init() {
	flag.StringVar(&flagconf, "conf", "", "config path, eg: -conf config.yaml")
}

type app struct {
	server          *http.Server
	emitter         *audit.Emitter
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func newApp(c *conf.Config, server *http.Server, emitter *audit.Emitter, logger *zap.Logger) *app {
	return &app{
		server:          server,
		emitter:         emitter,
		logger:          logger,
		shutdownTimeout: c.Server.ShutdownTimeout,
	}
}

func newLogger(c conf.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func (a *app) run() error {
	go func() {
		a.logger.Info("server starting",
			zap.String("addr", a.server.Addr),
			zap.String("version", Version),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}
	// Pending audit events may be dropped; shutdown is never held up by them.
	if err := a.emitter.Close(ctx); err != nil {
		a.logger.Warn("audit events dropped at shutdown", zap.Error(err))
	}

	a.logger.Info("server stopped")
	return nil
}

func main() {
	flag.Parse()

	c, err := conf.Load(flagconf)
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(c.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	a, cleanup, err := wireApp(c, logger)
	if err != nil {
		logger.Fatal("failed to build gateway", zap.Error(err))
	}
	defer cleanup()

	if err := a.run(); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
