package models

import "errors"

// Sentinel errors for common failure conditions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")

	// Auth-flow errors
	ErrRateLimited = errors.New("too many failed attempts")
	ErrNoSecret    = errors.New("no session secret configured")

	// Notification errors
	ErrNotConfigured  = errors.New("webhook not configured")
	ErrDeliveryFailed = errors.New("notification delivery failed")
)
