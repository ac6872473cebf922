package errs

import "errors"

// Sentinel errors shared across the gateway, client and dev backend layers.
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Authentication backend errors
	ErrBackendUnavailable = errors.New("authentication backend unavailable")
	ErrMalformedResponse  = errors.New("malformed authentication response")

	// Dev backend errors
	ErrUserNotFound   = errors.New("user not found")
	ErrSeedLoadFailed = errors.New("seed users could not be loaded")
)
