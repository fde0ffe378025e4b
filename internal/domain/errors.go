package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Batch errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidItem  = "invalid item"

	// Rule errors
	ErrMsgInvalidQuality = "invalid quality"

	// History errors
	ErrMsgDayNotFound = "day not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrInvalidItem    = errors.New(ErrMsgInvalidItem)
	ErrInvalidQuality = errors.New(ErrMsgInvalidQuality)

	ErrDayNotFound = errors.New(ErrMsgDayNotFound)
)
