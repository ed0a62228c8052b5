package main

import (
	"testing"

	"click-gateway/internal/conf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(conf.Log{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger(conf.Log{Level: "warn", Development: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = newLogger(conf.Log{Level: "chatty"})
	assert.Error(t, err)
}
