package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/validator"
)

// Summary is the form-level status message.
type Summary struct {
	Text string
	Tone validator.Tone
}

// RenderOptions describe per-request data renderers use to customise their
// output without mutating the form definition.
type RenderOptions struct {
	// Values pre-populates controls keyed by field name.
	Values map[string]string
	// Errors holds inline messages keyed by field name. A field listed here
	// is rendered with the invalid indicator set.
	Errors map[string][]string
	// FormErrors are messages that do not belong to a single field.
	FormErrors []string
	// Summary is the status message shown above the submit button.
	Summary *Summary
	// Hidden adds hidden inputs such as a CSRF token.
	Hidden map[string]string
	// Theme carries resolved tokens and asset URLs.
	Theme *theme.RendererConfig
}
