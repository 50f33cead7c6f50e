package vanilla

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/validator"
)

func (r *Renderer) view(form model.FormModel, options render.RenderOptions) map[string]any {
	submit := strings.TrimSpace(form.SubmitLabel)
	if submit == "" {
		submit = "Submit"
	}

	data := map[string]any{
		"form": map[string]any{
			"id":           form.ID,
			"title":        form.Title,
			"description":  form.Description,
			"submit_label": submit,
		},
		"classes":     chromeClasses(),
		"fields":      fieldViews(form, options),
		"summary_id":  model.SummaryID,
		"form_errors": options.FormErrors,
		"hidden":      hiddenViews(options.Hidden),
	}

	stylesheets := append([]string(nil), r.stylesheets...)
	if r.inlineStyles != "" {
		data["stylesheet_inline"] = r.inlineStyles
	}

	if summary := options.Summary; summary != nil && strings.TrimSpace(summary.Text) != "" {
		tone := summary.Tone
		if tone == "" {
			tone = validator.ToneError
		}
		data["summary"] = map[string]any{
			"text": summary.Text,
			"tone": string(tone),
		}
	}

	if cfg := options.Theme; cfg != nil {
		data["theme"] = map[string]any{
			"name":    cfg.Theme,
			"variant": cfg.Variant,
		}
		data["css_vars"] = cssVarViews(cfg.CSSVars)
		if cfg.AssetURL != nil {
			if href := cfg.AssetURL("stylesheet"); href != "" {
				stylesheets = append(stylesheets, href)
			}
		}
	}
	data["stylesheets"] = stylesheets

	return data
}

func fieldViews(form model.FormModel, options render.RenderOptions) []map[string]any {
	out := make([]map[string]any, 0, len(form.Fields))
	for _, field := range form.Fields {
		value, ok := options.Values[field.Name]
		if !ok {
			value = field.Default
		}
		if field.Type == model.FieldTypePassword {
			value = ""
		}

		messages := nonEmpty(options.Errors[field.Name])
		errorID := validator.ErrorID(field.Name)
		hintID := ""
		if field.Description != "" {
			hintID = field.Name + "-hint"
		}

		out = append(out, map[string]any{
			"id":           field.Name,
			"name":         field.Name,
			"type":         controlType(field.Type),
			"textarea":     field.Type == model.FieldTypeTextarea,
			"label":        field.DisplayLabel(),
			"placeholder":  field.Placeholder,
			"description":  field.Description,
			"autocomplete": autocompleteHint(field),
			"value":        value,
			"invalid":      len(messages) > 0,
			"error":        strings.Join(messages, " "),
			"error_id":     errorID,
			"hint_id":      hintID,
			"described_by": describedBy(hintID, errorID),
		})
	}
	return out
}

func hiddenViews(hidden map[string]string) []map[string]any {
	fields := render.SortedHiddenFields(hidden)
	out := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		out = append(out, map[string]any{"name": field.Name, "value": field.Value})
	}
	return out
}

func cssVarViews(vars map[string]string) []map[string]any {
	if len(vars) == 0 {
		return nil
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]any{"name": name, "value": vars[name]})
	}
	return out
}

func nonEmpty(messages []string) []string {
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
