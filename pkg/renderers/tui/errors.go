package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrDeclined is returned when the user answers no to the submit prompt.
	ErrDeclined = errors.New("tui: submission declined")
	// ErrRejected is returned when the form still fails validation after the
	// configured number of submit attempts.
	ErrRejected = errors.New("tui: form rejected")
)
