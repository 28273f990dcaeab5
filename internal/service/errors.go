package service

import "errors"

// Request-scoped failure categories. Handlers map these to distinct HTTP
// statuses; store.ErrNotFound covers missing entities. Individual attachment
// upload failures are not in this list: they are logged and skipped without
// failing the operation.
var (
	// ErrValidation marks malformed or out-of-range input: a bad rating,
	// an empty required field, a wrong submission encoding.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated marks a missing or invalid session.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUploaderNotConfigured marks an operation that strictly needs the
	// media upload service while none is configured.
	ErrUploaderNotConfigured = errors.New("media upload service not configured")
)
