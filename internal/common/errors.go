// Package common defines shared constants and sentinel errors used across
// the client, gateway, and service layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Resource errors.
	ErrNotFound = errors.New("not found")
)
