// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net"
	"strings"
	"time"
)

// ErrInvalidMaxAttempts is returned when a RetryPolicy has a
// non-positive attempt budget.
var ErrInvalidMaxAttempts = errors.New("retry policy: MaxAttempts must be > 0")

// RetryPolicy describes how failed provider calls are retried.
// It is a plain value so retry behavior is testable in isolation.
type RetryPolicy struct {
	// MaxAttempts is the total attempt budget, including the first call.
	MaxAttempts int

	// BaseDelay is the delay after the first failure; it doubles on
	// each subsequent failure.
	BaseDelay time.Duration

	// MaxDelay caps the backoff delay. Zero means no cap.
	MaxDelay time.Duration

	// Jitter adds up to this fraction (0..1) of random extra delay to
	// each sleep, spreading out concurrent retries.
	Jitter float64

	// Classify reports whether an error is transient and worth
	// retrying. Nil means DefaultClassifier.
	Classify func(error) bool
}

// DefaultRetryPolicy matches the original service behavior: 3 attempts,
// 1s base delay doubling to a 10s cap.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		MaxDelay:    10 * time.Second,
		Jitter:      0.2,
		Classify:    DefaultClassifier,
	}
}

// Do runs operation under the policy, retrying transient failures with
// exponential backoff. It returns the number of attempts used and the
// error from the last attempt, nil on success. Permanent failures are
// returned immediately without consuming the remaining budget.
func (p RetryPolicy) Do(ctx context.Context, operation func() error) (int, error) {
	if p.MaxAttempts <= 0 {
		return 0, ErrInvalidMaxAttempts
	}
	classify := p.Classify
	if classify == nil {
		classify = DefaultClassifier
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		// Check context before attempting
		select {
		case <-ctx.Done():
			return attempt - 1, ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return attempt, nil
		}

		if !classify(lastErr) {
			slog.Debug("permanent failure, not retrying", "attempt", attempt, "error", lastErr)
			return attempt, lastErr
		}

		slog.Debug("transient failure, will retry",
			"attempt", attempt, "maxAttempts", p.MaxAttempts, "error", lastErr)

		// Don't sleep after the last attempt
		if attempt == p.MaxAttempts {
			break
		}

		delay := p.delay(attempt)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt, ctx.Err()
		case <-timer.C:
		}
	}

	return p.MaxAttempts, lastErr
}

// delay computes the backoff for the given 1-based attempt number:
// BaseDelay * 2^(attempt-1), capped at MaxDelay, plus jitter.
func (p RetryPolicy) delay(attempt int) time.Duration {
	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if p.MaxDelay > 0 && delay >= p.MaxDelay {
			delay = p.MaxDelay
			break
		}
	}
	if p.Jitter > 0 {
		delay += time.Duration(p.Jitter * rand.Float64() * float64(delay))
	}
	return delay
}

// DefaultClassifier treats timeouts, rate limits and 5xx-class
// responses as transient; authentication and malformed-request errors
// are permanent. Providers surface HTTP failures as text, so the
// status classification is string-based.
func DefaultClassifier(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, permanent := range []string{
		"401", "403", "invalid api key", "incorrect api key",
		"unauthorized", "authentication", "400", "bad request",
		"unsupported", "malformed",
	} {
		if strings.Contains(msg, permanent) {
			return false
		}
	}
	for _, transient := range []string{
		"429", "rate limit", "quota", "timeout", "timed out",
		"500", "502", "503", "504", "overloaded", "unavailable",
		"connection refused", "connection reset", "eof",
	} {
		if strings.Contains(msg, transient) {
			return true
		}
	}

	// Unknown failures default to transient; the attempt budget still
	// bounds the damage.
	return true
}
