package model

import (
	"strings"

	"github.com/goliatone/go-formguard/pkg/rules"
)

// FieldType is the simplified enum for the input kinds a form can hold.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypePassword FieldType = "password"
	FieldTypeTextarea FieldType = "textarea"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypePassword, FieldTypeTextarea:
		return true
	default:
		return false
	}
}

// Field models an individual input inside a form. Struct fields are
// annotated so definitions round-trip through JSON and YAML.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Type        FieldType         `json:"type" yaml:"type"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Default     string            `json:"default,omitempty" yaml:"default,omitempty"`
	Rules       []rules.Spec      `json:"rules" yaml:"rules"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f Field) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return f.Name
}

// FormModel is the top-level representation consumed by the validator wiring
// and the renderers.
type FormModel struct {
	ID             string            `json:"id" yaml:"id"`
	Title          string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	SubmitLabel    string            `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	SuccessMessage string            `json:"successMessage,omitempty" yaml:"successMessage,omitempty"`
	FailureMessage string            `json:"failureMessage,omitempty" yaml:"failureMessage,omitempty"`
	Fields         []Field           `json:"fields" yaml:"fields"`
	Metadata       map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Field returns the field with the given name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// SummaryID is the element id of the form-level status message.
const SummaryID = "form-status"

// Clone returns a deep copy so callers can mutate the result freely.
func (f FormModel) Clone() FormModel {
	out := f
	out.Metadata = cloneMap(f.Metadata)
	if f.Fields != nil {
		out.Fields = make([]Field, len(f.Fields))
		for i, field := range f.Fields {
			field.Metadata = cloneMap(field.Metadata)
			field.Rules = append([]rules.Spec(nil), field.Rules...)
			out.Fields[i] = field
		}
	}
	return out
}

func cloneMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
