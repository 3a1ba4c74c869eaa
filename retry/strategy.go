// Package retry provides bounded exponential backoff strategies for the
// one-time startup fetch against the upstream message source.
package retry

import (
	"math"
	"time"
)

// Strategy defines the retry behavior for a failed upstream fetch.
// It implements exponential backoff with configurable parameters.
//
// The retry schedule follows: delay = min(BaseDelay * ExponentialBase^attempt, MaxDelay)
//
// Example with defaults (1s base, 2.0 exponential, 10s max):
//
//	Attempt 1: 1s
//	Attempt 2: 2s
//	Attempt 3: 4s (→ give up)
type Strategy struct {
	MaxAttempts     int           // Maximum fetch attempts before giving up
	BaseDelay       time.Duration // Initial retry delay (first attempt)
	MaxDelay        time.Duration // Maximum retry delay cap
	ExponentialBase float64       // Backoff multiplier (e.g., 2.0 for doubling)
}

// DefaultStrategy returns the default startup fetch strategy: 3 attempts
// with 1s→10s exponential backoff. The startup load must fail fast rather
// than hang, so the schedule is deliberately short.
func DefaultStrategy() Strategy {
	return Strategy{
		MaxAttempts:     3,
		BaseDelay:       time.Second,
		MaxDelay:        10 * time.Second,
		ExponentialBase: 2.0,
	}
}

// NoRetry returns a strategy that allows a single attempt and no retries.
func NoRetry() Strategy {
	return Strategy{
		MaxAttempts:     1,
		BaseDelay:       0,
		MaxDelay:        0,
		ExponentialBase: 1.0,
	}
}

// CalculateRetryDelay calculates the delay before the given retry attempt
// using exponential backoff.
// Formula: delay = min(BaseDelay * ExponentialBase^attemptNumber, MaxDelay)
func (s Strategy) CalculateRetryDelay(attemptNumber int) time.Duration {
	if attemptNumber <= 0 {
		return s.BaseDelay
	}

	delay := float64(s.BaseDelay) * math.Pow(s.ExponentialBase, float64(attemptNumber))

	if delay > float64(s.MaxDelay) {
		return s.MaxDelay
	}

	return time.Duration(delay)
}

// IsRetryable checks if another fetch attempt is allowed.
// Returns true if the attempt count is below the maximum attempts limit.
func (s Strategy) IsRetryable(attemptCount int) bool {
	return attemptCount < s.MaxAttempts
}
