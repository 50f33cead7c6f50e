package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formguard/pkg/formspec"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/validator"
)

// FieldResult is the outcome for one field of a checked submission.
type FieldResult struct {
	Name    string `json:"name"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Report is the outcome of submitting a set of values to a form.
type Report struct {
	Form    string        `json:"form"`
	Valid   bool          `json:"valid"`
	Summary string        `json:"summary,omitempty"`
	Fields  []FieldResult `json:"fields"`

	values  map[string]string
	errors  map[string][]string
	summary *render.Summary
}

// Check types values into the named form and submits it, reporting the
// result of every field in form order. Keys that are not fields of the form
// are an error; missing keys keep the field default.
func (o *Orchestrator) Check(ctx context.Context, formID string, values map[string]string) (Report, error) {
	form, err := o.Form(ctx, formID)
	if err != nil {
		return Report{}, err
	}
	return o.evaluate(form, values)
}

func (o *Orchestrator) evaluate(form model.FormModel, values map[string]string) (Report, error) {
	mounted, err := formspec.Mount(form, o.catalog, validator.WithResetOnSuccess(false))
	if err != nil {
		return Report{}, fmt.Errorf("orchestrator: %w", err)
	}
	if err := mounted.Fill(values); err != nil {
		return Report{}, fmt.Errorf("orchestrator: %w", err)
	}
	mounted.Document.Submit()

	state := mounted.Validator.State()
	text, tone, visible := mounted.Summary()

	var summary *render.Summary
	if visible {
		summary = &render.Summary{Text: text, Tone: tone}
	}
	opts := render.FromState(form, state, summary)

	report := Report{
		Form:    form.ID,
		Valid:   state.Valid,
		Summary: text,
		Fields:  make([]FieldResult, 0, len(state.Fields)),
		values:  mounted.Document.Values(),
		errors:  opts.Errors,
		summary: summary,
	}
	for _, field := range state.Fields {
		report.Fields = append(report.Fields, FieldResult{
			Name:    field.Name,
			Valid:   field.Valid,
			Message: field.Message,
		})
	}
	return report, nil
}
