package auth_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ItsCoreyE/creatorsite/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-secret"

func TestSessionManager_IssueAndVerify(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, 8*time.Hour)

	token, err := sm.Issue()
	require.NoError(t, err)
	assert.True(t, sm.Verify(token))
}

func TestSessionManager_Issue_NoSecret(t *testing.T) {
	sm := auth.NewSessionManager("", 8*time.Hour)

	_, err := sm.Issue()
	assert.Error(t, err)
}

func TestSessionManager_Verify_ExpiredToken(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, 8*time.Hour)

	issued := time.Now()
	sm.SetClock(func() time.Time { return issued })

	token, err := sm.Issue()
	require.NoError(t, err)
	assert.True(t, sm.Verify(token))

	// Valid right up to the expiry boundary, invalid one second past it
	sm.SetClock(func() time.Time { return issued.Add(8*time.Hour - time.Second) })
	assert.True(t, sm.Verify(token))

	sm.SetClock(func() time.Time { return issued.Add(8*time.Hour + time.Second) })
	assert.False(t, sm.Verify(token))
}

func TestSessionManager_Verify_TamperedSignature(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, 8*time.Hour)

	token, err := sm.Issue()
	require.NoError(t, err)

	// Flip one bit in the last signature character
	tampered := []byte(token)
	tampered[len(tampered)-1] ^= 0x01
	assert.False(t, sm.Verify(string(tampered)))
}

func TestSessionManager_Verify_TamperedPayload(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, 8*time.Hour)

	token, err := sm.Issue()
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)

	// Re-encode the payload with a far-future expiry but keep the old signature
	forged, err := json.Marshal(auth.SessionPayload{
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(100 * 365 * 24 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	forgedToken := base64.RawURLEncoding.EncodeToString(forged) + "." + parts[1]
	assert.False(t, sm.Verify(forgedToken))
}

func TestSessionManager_Verify_Malformed(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, 8*time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "abcdef"},
		{"too many parts", "a.b.c"},
		{"not base64", "!!!.???"},
		{"payload not json", base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, sm.Verify(tc.token))
		})
	}
}

func TestSessionManager_Verify_ZeroTTLAlreadyExpired(t *testing.T) {
	// A zero-TTL manager mints tokens with exp == iat, which must never verify
	sm := auth.NewSessionManager(testSecret, 0)

	token, err := sm.Issue()
	require.NoError(t, err)
	assert.False(t, sm.Verify(token))
}

func TestSessionManager_Verify_NoSecret(t *testing.T) {
	issuer := auth.NewSessionManager(testSecret, 8*time.Hour)
	token, err := issuer.Issue()
	require.NoError(t, err)

	verifier := auth.NewSessionManager("", 8*time.Hour)
	assert.False(t, verifier.Verify(token))
}

func TestSessionManager_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewSessionManager(testSecret, 8*time.Hour)
	token, err := issuer.Issue()
	require.NoError(t, err)

	verifier := auth.NewSessionManager("some-other-secret", 8*time.Hour)
	assert.False(t, verifier.Verify(token))
}
