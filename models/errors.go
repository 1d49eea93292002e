package models

import "errors"

// Error taxonomy shared by services and translated to HTTP statuses by the
// API layer.
var (
	// ErrNotFound: a referenced project/installer/record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation: malformed input rejected at the boundary before any
	// business logic runs.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration: a project's billing configuration is internally
	// inconsistent (e.g. a TM project without a bill rate). Signals a
	// data-integrity bug upstream, not a user error.
	ErrConfiguration = errors.New("inconsistent billing configuration")

	// ErrInvalidPin: the single generic GC auth failure. Callers must not
	// learn whether the PIN was wrong or merely already used.
	ErrInvalidPin = errors.New("invalid PIN or PIN already used")

	// ErrMalformedPin: input was not exactly 4 digits; rejected before the
	// store is touched.
	ErrMalformedPin = errors.New("malformed PIN")

	// ErrImmutableTag: an accepted T&M tag can no longer be modified.
	ErrImmutableTag = errors.New("accepted tag is immutable")

	// ErrUnauthorized: the caller lacks permission for the operation.
	ErrUnauthorized = errors.New("unauthorized")
)
