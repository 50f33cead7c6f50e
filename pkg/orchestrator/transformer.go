package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/rules"
)

// Transformer mutates a FormModel before decorators run.
type Transformer interface {
	Transform(ctx context.Context, form *model.FormModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.FormModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.FormModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative copy and rule overrides loaded from
// a JSON document, keyed by form id:
//
//	{
//	  "contact": {
//	    "submitLabel": "Send",
//	    "fields": {
//	      "name": {"label": "Your name", "rules": ["name", {"minLength": 2}]}
//	    }
//	  }
//	}
//
// Field names cannot be changed because they double as element ids.
type PresetTransformer struct {
	presets map[string]formPatch
}

type formPatch struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	SubmitLabel    string                `json:"submitLabel"`
	SuccessMessage string                `json:"successMessage"`
	FailureMessage string                `json:"failureMessage"`
	Metadata       map[string]string     `json:"metadata"`
	Fields         map[string]fieldPatch `json:"fields"`
}

type fieldPatch struct {
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Placeholder string            `json:"placeholder"`
	Default     *string           `json:"default"`
	Rules       []rules.Spec      `json:"rules"`
	Metadata    map[string]string `json:"metadata"`
}

// NewPresetTransformer constructs a transformer from raw JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var presets map[string]formPatch
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{presets: presets}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the preset for form.ID, if any.
func (t *PresetTransformer) Transform(ctx context.Context, form *model.FormModel) error {
	if form == nil {
		return errors.New("preset transformer: form model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	patch, ok := t.presets[form.ID]
	if !ok {
		return nil
	}

	setIf(&form.Title, patch.Title)
	setIf(&form.Description, patch.Description)
	setIf(&form.SubmitLabel, patch.SubmitLabel)
	setIf(&form.SuccessMessage, patch.SuccessMessage)
	setIf(&form.FailureMessage, patch.FailureMessage)
	form.Metadata = mergeStringMap(form.Metadata, patch.Metadata)

	for name, fp := range patch.Fields {
		field := findField(form.Fields, name)
		if field == nil {
			return fmt.Errorf("preset transformer: form %q has no field %q", form.ID, name)
		}
		applyFieldPatch(field, fp)
	}
	return nil
}

func applyFieldPatch(field *model.Field, patch fieldPatch) {
	setIf(&field.Label, patch.Label)
	setIf(&field.Description, patch.Description)
	setIf(&field.Placeholder, patch.Placeholder)
	if patch.Default != nil {
		field.Default = *patch.Default
	}
	if len(patch.Rules) > 0 {
		field.Rules = append([]rules.Spec(nil), patch.Rules...)
	}
	field.Metadata = mergeStringMap(field.Metadata, patch.Metadata)
}

func setIf(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func findField(fields []model.Field, name string) *model.Field {
	for idx := range fields {
		if fields[idx].Name == name {
			return &fields[idx]
		}
	}
	return nil
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
