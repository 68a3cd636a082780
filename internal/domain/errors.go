package domain

import "errors"

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")

	// ErrNoFields is returned when a partial update supplies zero
	// recognized fields; nothing touches the database in that case.
	ErrNoFields = errors.New("no fields to update")
)
