package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthMonitor_Check(t *testing.T) {
	t.Run("mongo only", func(t *testing.T) {
		m := NewHealthMonitor(stubPinger{}, nil)
		status := m.Check(context.Background())

		assert.True(t, status.Mongo)
		assert.Nil(t, status.Redis)
		assert.True(t, status.Healthy())
		assert.Equal(t, status, m.Status())
	})

	t.Run("redis down", func(t *testing.T) {
		m := NewHealthMonitor(stubPinger{}, stubPinger{err: errors.New("connection refused")})
		status := m.Check(context.Background())

		require.NotNil(t, status.Redis)
		assert.False(t, *status.Redis)
		assert.False(t, status.Healthy())
	})

	t.Run("mongo down", func(t *testing.T) {
		m := NewHealthMonitor(stubPinger{err: errors.New("no reachable servers")}, nil)
		assert.False(t, m.Check(context.Background()).Healthy())
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("production", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("development", "loud")
	assert.Error(t, err)
}
