// Package common defines shared constants and sentinel errors used across
// the Ayuda client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport / gateway errors.
	ErrUnavailable  = errors.New("service unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")

	// Flow-level errors.
	ErrNoSession         = errors.New("authentication required")
	ErrValidation        = errors.New("validation error")
	ErrNoRecommendations = errors.New("no recommendations data")
)

// AuthHeaderName is the HTTP header carrying the bearer credential on
// outbound requests.
const AuthHeaderName = "Authorization"
