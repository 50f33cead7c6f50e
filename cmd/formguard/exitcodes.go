package main

// Exit codes returned by formguard.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure, aborted session)
	ExitConfigError = 2 // Configuration error (bad settings file, unknown form, bad definitions)
	ExitDataError   = 3 // Data error (values failed validation, malformed values file)
)

// exitError carries the exit code a command failed with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}
