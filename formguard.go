// Package formguard is the top-level entry point: it re-exports the
// orchestrator constructor and a few one-call helpers for callers that just
// want HTML or a validation report for a stored form.
package formguard

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/formspec"
	"github.com/goliatone/go-formguard/pkg/orchestrator"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
)

// RenderOptions describes per-request overrides renderers use to prefill
// values or surface validation errors.
type RenderOptions = render.RenderOptions

// Report is the outcome of submitting a set of values to a form.
type Report = orchestrator.Report

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the stored form formID with values typed in. With
// validate set the form is also submitted so inline errors and the summary
// appear in the markup.
func GenerateHTML(ctx context.Context, formID string, values map[string]string, validate bool, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		FormID:   formID,
		Values:   values,
		Validate: validate,
	})
}

// Check submits values to the stored form formID and reports every field.
func Check(ctx context.Context, formID string, values map[string]string, options ...orchestrator.Option) (Report, error) {
	return orchestrator.New(options...).Check(ctx, formID, values)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the bundled stylesheet so applications can serve it.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}

// EmbeddedForms exposes the bundled form definitions.
func EmbeddedForms() fs.FS {
	return formspec.EmbeddedFS()
}
