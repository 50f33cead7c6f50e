package formspec

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formguard/pkg/model"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Sanitizer returns a decorator that strips markup from every human-facing
// string of a form: titles, labels, placeholders, help text and messages.
// Definitions are plain text; renderers escape on output.
func Sanitizer() model.Decorator {
	return model.DecoratorFunc(func(form *model.FormModel) error {
		form.Title = sanitizeText(form.Title)
		form.Description = sanitizeText(form.Description)
		form.SubmitLabel = sanitizeText(form.SubmitLabel)
		form.SuccessMessage = sanitizeText(form.SuccessMessage)
		form.FailureMessage = sanitizeText(form.FailureMessage)

		for idx := range form.Fields {
			field := &form.Fields[idx]
			field.Label = sanitizeText(field.Label)
			field.Placeholder = sanitizeText(field.Placeholder)
			field.Description = sanitizeText(field.Description)
			for ruleIdx := range field.Rules {
				field.Rules[ruleIdx].Message = sanitizeText(field.Rules[ruleIdx].Message)
			}
		}
		return nil
	})
}

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	// The policy escapes entities on output; definitions hold plain text.
	return strings.TrimSpace(html.UnescapeString(strictPolicy().Sanitize(trimmed)))
}

func strictPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
