package formspec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-formguard/pkg/dom"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/validator"
)

// Build creates a validator for form on surface, compiling each field's rule
// specs against catalog. Options are applied after the form's own summary and
// messages so callers can override them.
func Build(form model.FormModel, surface validator.Surface, catalog *rules.Catalog, options ...validator.Option) (*validator.Validator, error) {
	if catalog == nil {
		catalog = rules.DefaultCatalog()
	}

	opts := []validator.Option{
		validator.WithSummary(model.SummaryID),
		validator.WithMessages(form.SuccessMessage, form.FailureMessage),
	}
	opts = append(opts, options...)

	v, err := validator.New(surface, opts...)
	if err != nil {
		return nil, fmt.Errorf("formspec: form %q: %w", form.ID, err)
	}

	for _, field := range form.Fields {
		compiled, err := catalog.CompileAll(field.Rules)
		if err != nil {
			return nil, fmt.Errorf("formspec: form %q field %q: %w", form.ID, field.Name, err)
		}
		if err := v.Register(field.Name, compiled...); err != nil {
			return nil, fmt.Errorf("formspec: form %q: %w", form.ID, err)
		}
	}
	return v, nil
}

// Mounted is a form wired to an in-memory document with its event handlers
// attached.
type Mounted struct {
	Form      model.FormModel
	Document  *dom.Document
	Validator *validator.Validator
}

// Mount builds the document for form, registers every field and attaches the
// validator's input and submit handlers.
func Mount(form model.FormModel, catalog *rules.Catalog, options ...validator.Option) (*Mounted, error) {
	doc, err := dom.FromForm(form)
	if err != nil {
		return nil, fmt.Errorf("formspec: form %q: %w", form.ID, err)
	}
	v, err := Build(form, doc, catalog, options...)
	if err != nil {
		return nil, err
	}
	v.Attach(doc)
	return &Mounted{Form: form, Document: doc, Validator: v}, nil
}

// ErrUnknownField reports a value keyed by a name the form does not define.
var ErrUnknownField = errors.New("unknown field")

// Fill types each value into its input, firing input events in form order.
// Unknown names are rejected; the first in sorted order is reported.
func (m *Mounted) Fill(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := m.Form.Field(name); !ok {
			return fmt.Errorf("formspec: form %q: %w %q", m.Form.ID, ErrUnknownField, name)
		}
	}
	for _, field := range m.Form.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		if err := m.Document.Type(field.Name, value); err != nil {
			return err
		}
	}
	return nil
}

// Summary returns the form status text, its tone and whether it is visible.
func (m *Mounted) Summary() (string, validator.Tone, bool) {
	el, ok := m.Document.Element(model.SummaryID)
	if !ok || el.Hidden() {
		return "", "", false
	}
	tone := validator.ToneError
	if el.HasClass(dom.ClassSuccess) {
		tone = validator.ToneSuccess
	}
	return el.Text(), tone, true
}
