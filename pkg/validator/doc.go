// Package validator applies rules to registered form fields and reflects the
// outcome on a host surface. Each field owns an input element and an error
// element ("<name>-error" unless bound otherwise); an optional summary
// element reports form-level status.
//
// ValidateField runs on every input event once Attach is called. OnSubmit
// always suppresses the default action, evaluates every field and only runs
// the success hook, the reset and the success message when all of them pass.
// A field that has never been evaluated counts as invalid.
package validator
