package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestRetryPolicy_Success(t *testing.T) {
	attempts := 0
	operation := func() error {
		attempts++
		return nil
	}

	used, err := testPolicy().Do(context.Background(), operation)
	require.NoError(t, err)
	assert.Equal(t, 1, used, "should succeed on first try")
	assert.Equal(t, 1, attempts)
}

func TestRetryPolicy_EventualSuccess(t *testing.T) {
	attempts := 0
	operation := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("503 service unavailable")
		}
		return nil
	}

	used, err := testPolicy().Do(context.Background(), operation)
	require.NoError(t, err)
	assert.Equal(t, 3, used, "two transient failures then success should report 3 attempts")
}

func TestRetryPolicy_Exhaustion(t *testing.T) {
	attempts := 0
	transientErr := errors.New("429 rate limit exceeded")
	operation := func() error {
		attempts++
		return transientErr
	}

	used, err := testPolicy().Do(context.Background(), operation)
	require.Error(t, err)
	assert.Equal(t, transientErr, err, "should return the original error")
	assert.Equal(t, 3, used)
	assert.Equal(t, 3, attempts, "should attempt exactly MaxAttempts times")
}

func TestRetryPolicy_PermanentNotRetried(t *testing.T) {
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("401 invalid api key")
	}

	used, err := testPolicy().Do(context.Background(), operation)
	require.Error(t, err)
	assert.Equal(t, 1, used, "permanent failures must not be retried")
	assert.Equal(t, 1, attempts)
}

func TestRetryPolicy_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	operation := func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return errors.New("timeout contacting provider")
	}

	policy := RetryPolicy{MaxAttempts: 10, BaseDelay: time.Millisecond}
	_, err := policy.Do(ctx, operation)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, attempts, 10, "cancellation should stop the loop early")
}

func TestRetryPolicy_InvalidMaxAttempts(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 0}
	_, err := policy.Do(context.Background(), func() error { return nil })
	require.ErrorIs(t, err, ErrInvalidMaxAttempts)
}

func TestRetryPolicy_CustomClassifier(t *testing.T) {
	attempts := 0
	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Classify:    func(error) bool { return false },
	}

	_, err := policy.Do(context.Background(), func() error {
		attempts++
		return errors.New("would normally be transient: 503")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "custom classifier marks everything permanent")
}

func TestDefaultClassifier(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "nil", err: nil, transient: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, transient: true},
		{name: "rate limit", err: errors.New("429 Too Many Requests"), transient: true},
		{name: "server error", err: errors.New("request failed with status 502"), transient: true},
		{name: "quota", err: errors.New("gemini API quota exceeded"), transient: true},
		{name: "invalid key", err: errors.New("401 Unauthorized: invalid api key"), transient: false},
		{name: "bad request", err: errors.New("400 bad request: malformed payload"), transient: false},
		{name: "unsupported input", err: errors.New("unsupported input type"), transient: false},
		{name: "unknown", err: errors.New("something odd happened"), transient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, DefaultClassifier(tt.err))
		})
	}
}
