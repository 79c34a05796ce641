package domain

import (
	"errors"
	"fmt"
)

// MissingArgumentError reports an argument that was requested without a default
// and is not present in the store. It matches ErrMissingArgument with errors.Is.
type MissingArgumentError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingArgument.Error(), e.Name)
}

// Unwrap exposes the ErrMissingArgument sentinel.
func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// ConversionError reports a raw value that could not be converted to Type.
// It matches ErrConversion with errors.Is, and the underlying cause
// (ErrNoConverter or the parser's own error) is reachable as well.
type ConversionError struct {
	Name string
	Raw  string
	Type string
	Err  error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("%s: cannot convert %q to %s", ErrConversion.Error(), e.Raw, e.Type)
	if e.Name != "" {
		msg += fmt.Sprintf(" (argument %q)", e.Name)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the ErrConversion sentinel and the cause.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}

// IsConversionError reports whether err carries a *ConversionError and returns it.
func IsConversionError(err error) (*ConversionError, bool) {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr, true
	}
	return nil, false
}
