// Package apperrors holds the error kinds shared by repositories, services and handlers.
// Callers wrap one of these with fmt.Errorf("...: %w", ...) and handlers map them to
// HTTP status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a uniqueness violation (email, slug).
	ErrConflict = errors.New("already exists")

	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned for bad credentials and bad tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTransaction marks a store failure inside a transaction that was rolled back.
	ErrTransaction = errors.New("transaction failed")
)
