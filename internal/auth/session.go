package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// SessionPayload is the signed token body. Timestamps are unix seconds.
type SessionPayload struct {
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// SessionManager issues and verifies HMAC-signed admin session tokens.
//
// A token is base64url(JSON payload) + "." + base64url(HMAC-SHA256 of the
// encoded payload). The token is opaque to the client; only a holder of the
// signing secret can mint or verify one. No server-side session state exists.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a SessionManager. An empty secret is tolerated
// here so startup doesn't have to special-case it; Issue and Verify fail
// closed instead.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SetClock overrides the time source for expiry checks (tests only).
func (sm *SessionManager) SetClock(now func() time.Time) {
	sm.now = now
}

// TTL returns the configured session lifetime.
func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}

// Issue mints a signed session token valid for the configured TTL.
// A missing secret is a server misconfiguration: issuing an unsigned or
// trivially forgeable token would silently disable authentication, so this
// fails instead.
func (sm *SessionManager) Issue() (string, error) {
	if len(sm.secret) == 0 {
		return "", models.ErrNoSecret
	}

	nowSeconds := sm.now().Unix()
	payload := SessionPayload{
		IssuedAt:  nowSeconds,
		ExpiresAt: nowSeconds + int64(sm.ttl.Seconds()),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(raw)
	return encoded + "." + sm.sign(encoded), nil
}

// Verify reports whether a token is authentic and unexpired. It fails
// closed on every malformed input: missing token or secret, wrong part
// count, signature length or value mismatch, unparsable payload, missing
// expiry. The signature check uses a constant-time comparison.
func (sm *SessionManager) Verify(token string) bool {
	if token == "" || len(sm.secret) == 0 {
		return false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return false
	}
	encoded, providedSig := parts[0], parts[1]

	expectedSig := sm.sign(encoded)
	if len(providedSig) != len(expectedSig) {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(providedSig), []byte(expectedSig)) != 1 {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}

	var payload SessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false
	}
	if payload.ExpiresAt == 0 {
		return false
	}

	return payload.ExpiresAt > sm.now().Unix()
}

// sign computes the base64url HMAC-SHA256 signature of the encoded payload.
func (sm *SessionManager) sign(encodedPayload string) string {
	mac := hmac.New(sha256.New, sm.secret)
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
