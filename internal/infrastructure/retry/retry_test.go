package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDoWithResult_SuccessOnFirstAttempt(t *testing.T) {
	var attempts int32

	result, err := DoWithResult(context.Background(), func() (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "ok", nil
	}, Fixed(3, time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, int32(1), attempts)
}

func TestDoWithResult_SuccessAfterRetries(t *testing.T) {
	var attempts int32

	result, err := DoWithResult(context.Background(), func() (int, error) {
		count := atomic.AddInt32(&attempts, 1)
		if count < 3 {
			return 0, errors.New("temporary")
		}
		return 42, nil
	}, Fixed(5, time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, int32(3), attempts)
}

func TestDoWithResult_MaxAttemptsExceeded(t *testing.T) {
	var attempts int32
	expectedErr := errors.New("persistent error")

	result, err := DoWithResult(context.Background(), func() (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "partial", expectedErr
	}, Fixed(3, time.Millisecond))

	assert.Equal(t, expectedErr, err)
	assert.Equal(t, "partial", result, "last result is returned")
	assert.Equal(t, int32(3), attempts)
}

func TestDoWithResult_ZeroMaxAttempts(t *testing.T) {
	var attempts int32

	_, err := DoWithResult(context.Background(), func() (struct{}, error) {
		atomic.AddInt32(&attempts, 1)
		return struct{}{}, errors.New("fail")
	}, Config{MaxAttempts: 0})

	assert.Error(t, err)
	assert.Equal(t, int32(1), attempts, "zero attempts defaults to one")
}

func TestDoWithResult_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var attempts int32

	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := DoWithResult(ctx, func() (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "", errors.New("temporary")
	}, Fixed(10, 50*time.Millisecond))

	assert.Equal(t, context.Canceled, err)
	assert.Less(t, atomic.LoadInt32(&attempts), int32(10))
}

func TestDoWithResult_ContextAlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var attempts int32

	_, err := DoWithResult(ctx, func() (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "", nil
	}, Fixed(3, time.Millisecond))

	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, int32(0), attempts)
}

func TestDoWithResult_OnRetryHook(t *testing.T) {
	var seen []int

	_, err := DoWithResult(context.Background(), func() (string, error) {
		return "", errors.New("boom")
	}, Fixed(3, time.Millisecond).WithOnRetry(func(attempt int, err error) {
		seen = append(seen, attempt)
	}))

	assert.Error(t, err)
	assert.Equal(t, []int{1, 2}, seen, "hook is not called after the final attempt")
}

func TestDoWithResult_FixedIntervalDoesNotGrow(t *testing.T) {
	var stamps []time.Time

	start := time.Now()
	_, _ = DoWithResult(context.Background(), func() (string, error) {
		stamps = append(stamps, time.Now())
		return "", errors.New("again")
	}, Fixed(4, 20*time.Millisecond))
	elapsed := time.Since(start)

	assert.Len(t, stamps, 4)
	for i := 1; i < len(stamps); i++ {
		assert.GreaterOrEqual(t, stamps[i].Sub(stamps[i-1]), 18*time.Millisecond)
	}
	// Three waits of 20ms; exponential growth would take at least 140ms
	assert.Less(t, elapsed, 130*time.Millisecond)
}

func TestDoWithResult_ExponentialBackoff(t *testing.T) {
	var stamps []time.Time

	_, err := DoWithResult(context.Background(), func() (string, error) {
		stamps = append(stamps, time.Now())
		if len(stamps) < 4 {
			return "", errors.New("temporary")
		}
		return "done", nil
	}, Config{
		MaxAttempts:  5,
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     100 * time.Millisecond,
		Multiplier:   2.0,
	})

	assert.NoError(t, err)
	assert.Len(t, stamps, 4)
	assert.GreaterOrEqual(t, stamps[3].Sub(stamps[2]), 35*time.Millisecond)
}

func TestCalculateSleepTime(t *testing.T) {
	assert.Equal(t, 10*time.Millisecond, calculateSleepTime(10*time.Millisecond, 0, 0))
	assert.Equal(t, 5*time.Millisecond, calculateSleepTime(10*time.Millisecond, 5*time.Millisecond, 0))

	jittered := calculateSleepTime(100*time.Millisecond, 0, 0.5)
	assert.GreaterOrEqual(t, jittered, 100*time.Millisecond)
	assert.LessOrEqual(t, jittered, 150*time.Millisecond)
}

func TestFixed(t *testing.T) {
	cfg := Fixed(10, 2*time.Second)

	assert.Equal(t, 10, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.InitialDelay)
	assert.Equal(t, 2*time.Second, cfg.MaxDelay)
	assert.Equal(t, 1.0, cfg.Multiplier)
	assert.Zero(t, cfg.JitterFactor)
}

func TestConfig_WithOnRetryKeepsSchedule(t *testing.T) {
	base := Fixed(5, time.Second)
	cfg := base.WithOnRetry(func(int, error) {})

	assert.NotNil(t, cfg.OnRetry)
	assert.Nil(t, base.OnRetry, "builder returns a copy")
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, time.Second, cfg.InitialDelay)
}
