package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateField is returned when a field name is registered twice.
	ErrDuplicateField = errors.New("field already registered")
	// ErrMissingInput is returned when the surface has no input for a field.
	ErrMissingInput = errors.New("input element not found")
	// ErrMissingFeedback is returned when the surface has no error display for
	// a field.
	ErrMissingFeedback = errors.New("error element not found")
	// ErrMissingSummary is returned when the configured summary element does
	// not exist.
	ErrMissingSummary = errors.New("summary element not found")
	// ErrNoRules is returned when a field is registered without rules.
	ErrNoRules = errors.New("at least one rule is required")
	// ErrInvalidRule is returned for zero-value rules or rules without a
	// failure message.
	ErrInvalidRule = errors.New("rule is empty or has no message")
	// ErrUnknownField is returned when validating a name that was never
	// registered.
	ErrUnknownField = errors.New("field not registered")
)

// ConfigurationError reports a programmer error detected while wiring a
// form. It is never produced by user input.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validator: %v", e.Err)
	}
	return fmt.Sprintf("validator: field %q: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErr(field string, err error) error {
	return &ConfigurationError{Field: field, Err: err}
}
