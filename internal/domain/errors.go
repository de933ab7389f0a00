package domain

import "errors"

// Error kinds. Callers match them with errors.Is; wrapped variants carry the
// offending identifier.
var (
	// ErrValidation marks missing or malformed input, raised before any side effect.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a referenced order, payment or product that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStateConflict marks an illegal order status transition.
	ErrStateConflict = errors.New("illegal status transition")

	// ErrUnavailable marks a product that exists but is not active.
	ErrUnavailable = errors.New("product unavailable")

	// ErrUpstream marks a failed call to the catalog or customer registry.
	ErrUpstream = errors.New("upstream communication error")
)
