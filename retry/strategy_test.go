package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStrategy(t *testing.T) {
	s := DefaultStrategy()

	assert.Equal(t, 3, s.MaxAttempts)
	assert.Equal(t, time.Second, s.BaseDelay)
	assert.Equal(t, 10*time.Second, s.MaxDelay)
	assert.Equal(t, 2.0, s.ExponentialBase)
}

func TestStrategy_CalculateRetryDelay(t *testing.T) {
	s := DefaultStrategy()

	assert.Equal(t, time.Second, s.CalculateRetryDelay(0))
	assert.Equal(t, 2*time.Second, s.CalculateRetryDelay(1))
	assert.Equal(t, 4*time.Second, s.CalculateRetryDelay(2))
	assert.Equal(t, 8*time.Second, s.CalculateRetryDelay(3))
	// Capped at MaxDelay
	assert.Equal(t, 10*time.Second, s.CalculateRetryDelay(4))
	assert.Equal(t, 10*time.Second, s.CalculateRetryDelay(10))
}

func TestStrategy_CalculateRetryDelay_NegativeAttempt(t *testing.T) {
	s := DefaultStrategy()
	assert.Equal(t, s.BaseDelay, s.CalculateRetryDelay(-1))
}

func TestStrategy_IsRetryable(t *testing.T) {
	s := DefaultStrategy()

	assert.True(t, s.IsRetryable(0))
	assert.True(t, s.IsRetryable(2))
	assert.False(t, s.IsRetryable(3))
	assert.False(t, s.IsRetryable(10))
}

func TestNoRetry(t *testing.T) {
	s := NoRetry()

	assert.True(t, s.IsRetryable(0))
	assert.False(t, s.IsRetryable(1))
}
