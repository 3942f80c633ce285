package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiter(t *testing.T) (*RateLimitService, *time.Time) {
	t.Helper()
	svc := NewRateLimitService(RateLimitConfig{
		MaxFailures:   8,
		FailureWindow: 15 * time.Minute,
		LockoutPeriod: 30 * time.Minute,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	svc.SetClock(func() time.Time { return now })
	return svc, &now
}

func TestRateLimit_AllowsUnknownClient(t *testing.T) {
	svc, _ := testLimiter(t)

	allowed, retryAfter := svc.Check("203.0.113.7")
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestRateLimit_LocksAtMaxFailures(t *testing.T) {
	svc, _ := testLimiter(t)
	ip := "203.0.113.7"

	for i := 0; i < 7; i++ {
		svc.RecordFailure(ip)
		allowed, _ := svc.Check(ip)
		require.True(t, allowed, "attempt %d should still be allowed", i+1)
	}

	svc.RecordFailure(ip)
	allowed, retryAfter := svc.Check(ip)
	assert.False(t, allowed)
	assert.Equal(t, int((30 * time.Minute).Seconds()), retryAfter)
}

func TestRateLimit_LockoutOutlivesWindow(t *testing.T) {
	svc, now := testLimiter(t)
	ip := "203.0.113.7"

	for i := 0; i < 8; i++ {
		svc.RecordFailure(ip)
	}

	// 20 minutes later the counting window has lapsed but the 30-minute
	// lockout has not.
	*now = now.Add(20 * time.Minute)
	allowed, retryAfter := svc.Check(ip)
	assert.False(t, allowed)
	assert.Equal(t, int((10 * time.Minute).Seconds()), retryAfter)

	*now = now.Add(10*time.Minute + time.Second)
	allowed, _ = svc.Check(ip)
	assert.True(t, allowed)
}

func TestRateLimit_WindowExpiryResetsCount(t *testing.T) {
	svc, now := testLimiter(t)
	ip := "203.0.113.7"

	for i := 0; i < 7; i++ {
		svc.RecordFailure(ip)
	}

	// An eighth failure in a fresh window starts over at one.
	*now = now.Add(16 * time.Minute)
	svc.RecordFailure(ip)
	allowed, _ := svc.Check(ip)
	assert.True(t, allowed)
}

func TestRateLimit_SuccessClearsFailures(t *testing.T) {
	svc, _ := testLimiter(t)
	ip := "203.0.113.7"

	for i := 0; i < 7; i++ {
		svc.RecordFailure(ip)
	}
	svc.RecordSuccess(ip)

	for i := 0; i < 7; i++ {
		svc.RecordFailure(ip)
	}
	allowed, _ := svc.Check(ip)
	assert.True(t, allowed)
}

func TestRateLimit_ClientsAreIndependent(t *testing.T) {
	svc, _ := testLimiter(t)

	for i := 0; i < 8; i++ {
		svc.RecordFailure("203.0.113.7")
	}

	allowed, _ := svc.Check("198.51.100.23")
	assert.True(t, allowed)
}

func TestRateLimit_RetryAfterRoundsUp(t *testing.T) {
	svc, now := testLimiter(t)
	ip := "203.0.113.7"

	for i := 0; i < 8; i++ {
		svc.RecordFailure(ip)
	}

	*now = now.Add(29*time.Minute + 59*time.Second + 500*time.Millisecond)
	allowed, retryAfter := svc.Check(ip)
	assert.False(t, allowed)
	assert.Equal(t, 1, retryAfter)
}

func TestRateLimit_SweepEvictsStaleRecords(t *testing.T) {
	svc, now := testLimiter(t)

	svc.RecordFailure("203.0.113.7") // stale after the window lapses
	for i := 0; i < 8; i++ {
		svc.RecordFailure("198.51.100.23") // locked, must survive the sweep
	}

	*now = now.Add(16 * time.Minute)
	svc.Sweep()

	svc.mu.Lock()
	_, staleKept := svc.attempts["203.0.113.7"]
	_, lockedKept := svc.attempts["198.51.100.23"]
	svc.mu.Unlock()

	assert.False(t, staleKept)
	assert.True(t, lockedKept)
}
