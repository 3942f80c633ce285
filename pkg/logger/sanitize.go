// Package logger provides redaction helpers and the security audit logger.
package logger

import (
	"log/slog"
	"strings"
)

// RedactedAttr returns a redacted slog attribute for sensitive values
// In production, returns "[REDACTED]"; in development, returns the actual value
func RedactedAttr(key, value, env string) slog.Attr {
	if env == "production" {
		return slog.String(key, "[REDACTED]")
	}
	return slog.String(key, value)
}

// SensitiveQueryString reports whether a query string looks like it carries
// credential material and should be redacted wholesale from request logs.
func SensitiveQueryString(rawQuery string) bool {
	sensitiveParams := []string{
		"password", "token", "secret", "auth", "session",
	}

	query := strings.ToLower(rawQuery)
	for _, param := range sensitiveParams {
		if strings.Contains(query, param) {
			return true
		}
	}
	return false
}
