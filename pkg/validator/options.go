package validator

import "strings"

// Summary messages used when a form does not set its own.
const (
	// DefaultSuccessMessage is shown after a successful submit.
	DefaultSuccessMessage = "Thank you! Your form was submitted successfully."
	// DefaultFailureMessage is shown while any field is invalid.
	DefaultFailureMessage = "Please correct the errors in the form."
)

// Submission carries the trimmed field values of a successful submit.
type Submission struct {
	Values map[string]string
}

// SuccessFunc runs once per successful submit, before the form is reset.
type SuccessFunc func(Submission)

// Option configures a Validator.
type Option func(*config)

type config struct {
	summaryID      string
	successMessage string
	failureMessage string
	onSuccess      SuccessFunc
	resetOnSuccess bool
}

// WithSummary names the feedback element used for the form-level message.
func WithSummary(id string) Option {
	return func(cfg *config) {
		cfg.summaryID = strings.TrimSpace(id)
	}
}

// WithMessages overrides the success and failure summary text. Empty values
// keep the defaults.
func WithMessages(success, failure string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(success); trimmed != "" {
			cfg.successMessage = trimmed
		}
		if trimmed := strings.TrimSpace(failure); trimmed != "" {
			cfg.failureMessage = trimmed
		}
	}
}

// WithOnSuccess registers the submit-succeeded hook.
func WithOnSuccess(fn SuccessFunc) Option {
	return func(cfg *config) {
		cfg.onSuccess = fn
	}
}

// WithResetOnSuccess controls whether a successful submit resets the form.
// Enabled by default.
func WithResetOnSuccess(enabled bool) Option {
	return func(cfg *config) {
		cfg.resetOnSuccess = enabled
	}
}
