// Package services holds the business logic between HTTP handlers and the
// repositories.
package services

import (
	"fmt"
	"log/slog"

	"github.com/ItsCoreyE/creatorsite/internal/auth"
	"github.com/ItsCoreyE/creatorsite/internal/models"
	pkglogger "github.com/ItsCoreyE/creatorsite/pkg/logger"
)

// AuthService verifies the admin password and issues session tokens, with
// per-IP lockout applied before any credential check.
type AuthService struct {
	sessions *auth.SessionManager
	limiter  *RateLimitService
	password string
	audit    *pkglogger.AuditLogger
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(sessions *auth.SessionManager, limiter *RateLimitService, password string, logger *slog.Logger) *AuthService {
	return &AuthService{
		sessions: sessions,
		limiter:  limiter,
		password: password,
		audit:    pkglogger.NewAuditLogger(logger),
		logger:   logger,
	}
}

// Login checks the rate limit for ip, verifies the candidate password and
// issues a session token. The rate limit runs first so a locked-out client
// learns nothing about credential validity. On lockout the error is
// models.ErrRateLimited and retryAfter carries the wait in seconds.
func (s *AuthService) Login(ip, password string) (token string, retryAfter int, err error) {
	allowed, retryAfter := s.limiter.Check(ip)
	if !allowed {
		s.audit.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "admin_login",
			IPAddress:     ip,
			Success:       false,
			FailureReason: "rate_limited",
		})
		return "", retryAfter, models.ErrRateLimited
	}

	if !auth.VerifyPassword(password, s.password) {
		s.limiter.RecordFailure(ip)
		s.audit.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "admin_login",
			IPAddress:     ip,
			Success:       false,
			FailureReason: "invalid_password",
		})
		return "", 0, models.ErrUnauthorized
	}

	token, err = s.sessions.Issue()
	if err != nil {
		return "", 0, fmt.Errorf("failed to issue session: %w", err)
	}

	s.limiter.RecordSuccess(ip)
	s.audit.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "admin_login",
		IPAddress: ip,
		Success:   true,
	})
	return token, 0, nil
}

// SessionMaxAge is the cookie lifetime in seconds.
func (s *AuthService) SessionMaxAge() int {
	return int(s.sessions.TTL().Seconds())
}
