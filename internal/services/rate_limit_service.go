package services

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// RateLimitConfig holds configuration for login rate limiting behavior
type RateLimitConfig struct {
	MaxFailures   int           // failures within the window before lockout
	FailureWindow time.Duration // fixed counting window
	LockoutPeriod time.Duration // block duration once the limit is hit
}

// attemptRecord tracks one client's failure count within its current window.
type attemptRecord struct {
	failures    int
	windowStart time.Time
	lockedUntil time.Time
}

// RateLimitService enforces per-IP lockout for admin login attempts. State
// is in-memory and mutex-guarded; a restart clears it, which is acceptable
// for a single-admin deployment.
type RateLimitService struct {
	mu       sync.Mutex
	attempts map[string]*attemptRecord
	config   RateLimitConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewRateLimitService creates a new RateLimitService
func NewRateLimitService(config RateLimitConfig, logger *slog.Logger) *RateLimitService {
	return &RateLimitService{
		attempts: make(map[string]*attemptRecord),
		config:   config,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock overrides the time source. Tests only.
func (s *RateLimitService) SetClock(now func() time.Time) {
	s.now = now
}

// Check reports whether a login attempt from ip may proceed. When blocked,
// retryAfter is the whole number of seconds the caller should wait, rounded
// up so a client that honors it never retries early.
func (s *RateLimitService) Check(ip string) (allowed bool, retryAfter int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.attempts[ip]
	if !ok {
		return true, 0
	}

	now := s.now()

	// The lockout check runs before any window reset: an expired counting
	// window must not unlock a client early.
	if now.Before(rec.lockedUntil) {
		return false, retryAfterSeconds(rec.lockedUntil.Sub(now))
	}

	if now.Sub(rec.windowStart) > s.config.FailureWindow {
		delete(s.attempts, ip)
		return true, 0
	}

	return true, 0
}

// RecordFailure counts a failed login attempt. Hitting the failure limit
// within the window starts the lockout.
func (s *RateLimitService) RecordFailure(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	rec, ok := s.attempts[ip]
	if !ok || now.Sub(rec.windowStart) > s.config.FailureWindow {
		rec = &attemptRecord{windowStart: now}
		s.attempts[ip] = rec
	}
	rec.failures++

	if rec.failures >= s.config.MaxFailures {
		rec.lockedUntil = now.Add(s.config.LockoutPeriod)
		s.logger.Warn("login rate limited",
			slog.String("ip_address", ip),
			slog.Int("failed_attempts", rec.failures),
			slog.Duration("lockout", s.config.LockoutPeriod))
	}
}

// RecordSuccess clears the failure state for ip after a successful login.
func (s *RateLimitService) RecordSuccess(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, ip)
}

// Sweep removes records whose window and lockout have both expired. Call
// periodically from a background goroutine.
func (s *RateLimitService) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for ip, rec := range s.attempts {
		if now.After(rec.lockedUntil) && now.Sub(rec.windowStart) > s.config.FailureWindow {
			delete(s.attempts, ip)
		}
	}
}

// SweepLoop runs Sweep every interval until stop is closed.
func (s *RateLimitService) SweepLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-stop:
			return
		}
	}
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}
