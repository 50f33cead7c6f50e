package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formguard/pkg/formspec"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/validator"
)

// Renderer implements render.Renderer as an interactive terminal session.
// Every answer is typed into an in-memory document so the form validator
// sees the same input events a browser would fire; the confirm prompt
// dispatches the submit event.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	catalog           *rules.Catalog
	maxAttempts       int
	submitTransformer SubmitTransformer
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		catalog:      rules.DefaultCatalog(),
		maxAttempts:  DefaultMaxAttempts,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unknown output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render runs the session and returns the accepted values serialized in the
// configured format. options.Values seed prompt defaults, options.Errors are
// shown as help on the first pass and options.Hidden are added to the output
// without overriding validated values.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	var submitted map[string]string
	mounted, err := formspec.Mount(form, r.catalog,
		validator.WithResetOnSuccess(false),
		validator.WithOnSuccess(func(s validator.Submission) {
			submitted = s.Values
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	defaults := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		defaults[field.Name] = field.Default
		if value, ok := options.Values[field.Name]; ok {
			defaults[field.Name] = value
		}
	}

	hints := options.Errors
	pending := form.Fields
	for attempt := 1; ; attempt++ {
		for _, field := range pending {
			if err := r.promptField(ctx, mounted, field, defaults[field.Name], hints[field.Name]); err != nil {
				return nil, err
			}
		}
		hints = nil

		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.prompt(submitLabel(form)),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDeclined
		}

		mounted.Document.Submit()
		text, _, _ := mounted.Summary()
		if submitted != nil {
			if text != "" {
				if err := r.driver.Info(ctx, r.theme.InfoPrefix+text); err != nil {
					return nil, err
				}
			}
			break
		}

		if text != "" {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+text); err != nil {
				return nil, err
			}
		}
		if attempt >= r.maxAttempts {
			return nil, ErrRejected
		}

		pending = invalidFields(form, mounted.Validator.State())
		for _, field := range pending {
			defaults[field.Name] = mounted.Document.Values()[field.Name]
		}
	}

	values := render.MergeHiddenFields(options.Hidden)
	for name, value := range submitted {
		values[name] = value
	}
	if r.submitTransformer != nil {
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(form, values)
}

func (r *Renderer) promptField(ctx context.Context, mounted *formspec.Mounted, field model.Field, def string, errs []string) error {
	check := func(answer string) error {
		if err := mounted.Document.Type(field.Name, answer); err != nil {
			return err
		}
		result, err := mounted.Validator.ValidateField(field.Name)
		if err != nil {
			return err
		}
		if !result.Valid {
			return errors.New(result.Message)
		}
		return nil
	}

	message := r.prompt(field.DisplayLabel())
	help := displayHelp(field, errs)

	var (
		answer string
		err    error
	)
	switch field.Type {
	case model.FieldTypePassword:
		answer, err = r.driver.Password(ctx, InputConfig{Message: message, Help: help, Validator: check})
	case model.FieldTypeTextarea:
		answer, err = r.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: def, Help: help, Validator: check})
	default:
		answer, err = r.driver.Input(ctx, InputConfig{Message: message, Default: def, Help: help, Validator: check})
	}
	if err != nil {
		return err
	}

	// Drivers that skip the validator still leave the final answer typed.
	return mounted.Document.Type(field.Name, answer)
}

func (r *Renderer) prompt(text string) string {
	return r.theme.PromptPrefix + text
}

func (r *Renderer) serialize(form model.FormModel, values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(form, values)), nil
	default:
		return json.Marshal(values)
	}
}

func invalidFields(form model.FormModel, state validator.FormState) []model.Field {
	var out []model.Field
	for _, field := range form.Fields {
		if fs, ok := state.Field(field.Name); ok && !fs.Valid {
			out = append(out, field)
		}
	}
	return out
}

func submitLabel(form model.FormModel) string {
	if label := strings.TrimSpace(form.SubmitLabel); label != "" {
		return label + "?"
	}
	return "Submit?"
}

func displayHelp(field model.Field, errs []string) string {
	parts := make([]string, 0, len(errs)+1)
	if h := field.Metadata["cli.help"]; h != "" {
		parts = append(parts, h)
	} else if field.Description != "" {
		parts = append(parts, field.Description)
	}
	parts = append(parts, errs...)
	return strings.Join(parts, " ")
}

func flattenForm(values map[string]string) string {
	out := url.Values{}
	for key, value := range values {
		out.Set(key, value)
	}
	return out.Encode()
}

// prettyPrint lists form fields in declaration order followed by any extra
// keys. Passwords are masked.
func prettyPrint(form model.FormModel, values map[string]string) string {
	var b strings.Builder
	seen := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		seen[field.Name] = struct{}{}
		if field.Type == model.FieldTypePassword {
			value = strings.Repeat("*", 8)
		}
		fmt.Fprintf(&b, "%s: %s\n", field.DisplayLabel(), value)
	}
	for _, hidden := range render.SortedHiddenFields(values) {
		if _, ok := seen[hidden.Name]; ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", hidden.Name, hidden.Value)
	}
	return b.String()
}
