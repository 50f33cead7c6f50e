// Package orchestrator coordinates the pipeline from a stored form
// definition to rendered output: transformers and decorators adjust the
// form, an optional validation pass types values into an in-memory document
// and submits it, the theme is resolved, and the selected renderer runs.
package orchestrator
