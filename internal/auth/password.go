package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword compares a candidate password against the configured
// secret without leaking timing information. Both values are hashed to a
// fixed length before the comparison so neither the length nor the content
// of the expected secret influences how long the check takes.
//
// If the expected value is a bcrypt hash ($2a$/$2b$/$2y$ prefix), the
// candidate is verified against it with bcrypt instead, so operators can
// store a hash rather than the plaintext password in the environment.
func VerifyPassword(candidate, expected string) bool {
	if candidate == "" || expected == "" {
		return false
	}

	if isBcryptHash(expected) {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(candidate)) == nil
	}

	candidateDigest := sha256.Sum256([]byte(candidate))
	expectedDigest := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(candidateDigest[:], expectedDigest[:]) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
