// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidInput is returned when request parameters fail validation.
	// This is often wrapped with a more specific error message and never
	// reaches the network boundary.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation is returned when a domain entity fails validation.
	ErrValidation = errors.New("validation failed")
)
