package render

import (
	"strings"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validator"
)

// FromState converts a validator snapshot into render options: the values
// the user typed, one inline message per invalid field, and the summary. The
// summary is passed in because only the surface knows whether it is visible.
func FromState(form model.FormModel, state validator.FormState, summary *Summary) RenderOptions {
	opts := RenderOptions{
		Values:  make(map[string]string, len(state.Fields)),
		Summary: summary,
	}

	for _, field := range state.Fields {
		if _, ok := form.Field(field.Name); !ok {
			opts.FormErrors = MergeFormErrors(opts.FormErrors, field.Message)
			continue
		}
		opts.Values[field.Name] = field.Value
		if field.Message == "" {
			continue
		}
		if opts.Errors == nil {
			opts.Errors = make(map[string][]string)
		}
		opts.Errors[field.Name] = append(opts.Errors[field.Name], field.Message)
	}
	return opts
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
