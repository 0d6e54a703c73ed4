package validate

import (
	"errors"
	"fmt"
)

// ErrConversionUnsupported is returned by Convert on validators that
// have no conversion (pure conditions, chains without a converting
// child). Hitting it means the caller asked the wrong validator for a
// value, not that the input was invalid.
var ErrConversionUnsupported = errors.New("validate: conversion not supported")

// ErrNoValidators is returned by Chain when given zero children.
var ErrNoValidators = errors.New("validate: chain needs at least one validator")

// ConversionError describes why a value could not be converted. It is
// the ordinary "input is invalid" outcome of a conversion validator;
// Message is suitable for display next to the offending widget.
type ConversionError struct {
	Message string // Human-readable reason, shown to the user
	Err     error  // Underlying cause, if any
}

func (e *ConversionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "invalid value"
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Invalid builds a *ConversionError with a formatted message.
func Invalid(format string, args ...any) *ConversionError {
	return &ConversionError{Message: fmt.Sprintf(format, args...)}
}

// Reason returns the display message for a validation outcome: the
// ConversionError message when err is one, the error text otherwise,
// and a generic fallback for nil-message errors.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}
