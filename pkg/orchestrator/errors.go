package orchestrator

import "errors"

// ErrFormNotFound is returned when a request names an unknown form.
var ErrFormNotFound = errors.New("form not found")
