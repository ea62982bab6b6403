package errors

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an export is requested for a format that already
// has one in flight.
var ErrBusy = errors.New("export already in progress for this format")

// FetchError represents a failure while fetching a profile from a platform.
type FetchError struct {
	Platform string
	Username string
	Message  string
	Err      error
}

// NewFetchError constructs a FetchError.
func NewFetchError(platform, username, message string, err error) error {
	return &FetchError{Platform: platform, Username: username, Message: message, Err: err}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Username != "" {
		return fmt.Sprintf("%s: @%s: %s", e.Platform, e.Username, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Platform, e.Message)
}

// Unwrap exposes the underlying error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme catalog or input validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EncodeError represents a failure while encoding or delivering an export.
type EncodeError struct {
	Format string
	Err    error
}

// NewEncodeError constructs an EncodeError.
func NewEncodeError(format string, err error) error {
	return &EncodeError{Format: format, Err: err}
}

func (e *EncodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format != "" {
		return fmt.Sprintf("encode error (%s): %v", e.Format, e.Err)
	}
	return fmt.Sprintf("encode error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *EncodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
