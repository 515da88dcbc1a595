package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	log := logger.NewNoopLogger()
	ctx := context.Background()

	t.Run("Succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetryConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("deadlock detected")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent error is not retried", func(t *testing.T) {
		calls := 0
		permanent := errors.New("syntax error")
		err := RetryOnTransientError(ctx, fastRetryConfig(), func() error {
			calls++
			return permanent
		}, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetryConfig(), func() error {
			calls++
			return errors.New("connection reset by peer")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		cfg := fastRetryConfig()
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour

		err := RetryOnTransientError(canceled, cfg, func() error {
			return errors.New("serialization failure")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, cfg))
	assert.Equal(t, 300*time.Millisecond, calculateBackoffWithJitter(5, cfg))

	cfg.JitterFactor = 0.5
	got := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, got, 100*time.Millisecond)
	assert.LessOrEqual(t, got, 150*time.Millisecond)
}
