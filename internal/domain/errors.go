package domain

import "errors"

var (
	// ErrEmptyInput is returned when a caller provides no OCR text at all.
	// Distinct from a valid extraction that found zero items.
	ErrEmptyInput = errors.New("no OCR text provided")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrReferenceUnavailable is returned when the food reference table
	// could not be loaded; the matcher degrades to defaults, never fatal
	ErrReferenceUnavailable = errors.New("food reference unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrSessionNotFound is returned when a workflow session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrItemNotFound is returned when an item is not part of a session
	ErrItemNotFound = errors.New("item not found in session")

	// ErrInvalidTransition is returned when a workflow event is not legal
	// from the session's current state
	ErrInvalidTransition = errors.New("invalid workflow transition")
)
