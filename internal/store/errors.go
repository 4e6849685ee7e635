package store

import "errors"

// Sentinel errors returned by store operations. Handlers match these with
// errors.Is to pick the HTTP status and client-facing message.
var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned by UserStore.Create when the
	// username is already taken by an existing user.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrMissingFields is returned by UserStore.Create when a required
	// field is empty.
	ErrMissingFields = errors.New("missing required fields")
)
