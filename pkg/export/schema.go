// Package export converts form definitions into OpenAPI 3 schemas so a
// backend can re-check submitted values against the same constraints the
// form validator enforces.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/rules"
)

// ExtensionRules lists the rule names applied to a property.
const ExtensionRules = "x-formguard-rules"

// Schema builds an object schema for form. Every field becomes a required
// string property carrying the pattern and length constraints of its rules;
// each rule's failure message is appended to the property description.
// Password policies are not expressible as a single pattern and export as
// minLength plus a description.
//
// The validator trims values before testing them, so the exported pattern and
// length constraints hold for trimmed values, as carried by
// validator.Submission.Values. Untrimmed input may fail a schema check the
// validator accepts.
func Schema(form model.FormModel, catalog *rules.Catalog) (*openapi3.Schema, error) {
	if catalog == nil {
		catalog = rules.DefaultCatalog()
	}

	schema := openapi3.NewObjectSchema()
	schema.Title = form.Title
	schema.Description = form.Description
	schema.Required = make([]string, 0, len(form.Fields))

	for _, field := range form.Fields {
		compiled, err := catalog.CompileAll(field.Rules)
		if err != nil {
			return nil, fmt.Errorf("export: form %q field %q: %w", form.ID, field.Name, err)
		}
		property, err := fieldSchema(field, compiled)
		if err != nil {
			return nil, fmt.Errorf("export: form %q field %q: %w", form.ID, field.Name, err)
		}
		schema.WithProperty(field.Name, property)
		schema.Required = append(schema.Required, field.Name)
	}
	return schema, nil
}

// Components builds one named schema per form, keyed by form id, for
// embedding under components.schemas of an OpenAPI document.
func Components(forms []model.FormModel, catalog *rules.Catalog) (openapi3.Schemas, error) {
	out := make(openapi3.Schemas, len(forms))
	for _, form := range forms {
		schema, err := Schema(form, catalog)
		if err != nil {
			return nil, err
		}
		out[form.ID] = openapi3.NewSchemaRef("", schema)
	}
	return out, nil
}

func fieldSchema(field model.Field, compiled []rules.Rule) (*openapi3.Schema, error) {
	property := openapi3.NewStringSchema()
	property.Title = field.DisplayLabel()
	switch field.Type {
	case model.FieldTypeEmail:
		property.Format = "email"
	case model.FieldTypePassword:
		property.Format = "password"
		property.WriteOnly = true
	}
	if field.Default != "" {
		property.Default = field.Default
	}

	// Empty input always fails, so every property needs at least one rune.
	property.WithMinLength(1)

	var (
		descriptions []string
		patterns     []string
		names        []string
	)
	if field.Description != "" {
		descriptions = append(descriptions, field.Description)
	}

	for _, rule := range compiled {
		names = append(names, rule.Name())
		descriptions = append(descriptions, rule.Message())

		c := rule.Constraint()
		if c.Pattern != "" {
			patterns = append(patterns, c.Pattern)
		}
		if c.MinLength > 0 && uint64(c.MinLength) > property.MinLength {
			property.WithMinLength(int64(c.MinLength))
		}
		if c.MaxLength > 0 && (property.MaxLength == nil || uint64(c.MaxLength) < *property.MaxLength) {
			property.WithMaxLength(int64(c.MaxLength))
		}
		if c.Password != nil {
			descriptions = append(descriptions, describePolicy(*c.Password))
		}
	}

	switch len(patterns) {
	case 0:
	case 1:
		property.WithPattern(patterns[0])
	default:
		// A value must match every pattern; express that with allOf.
		property.WithPattern(patterns[0])
		for _, expr := range patterns[1:] {
			property.AllOf = append(property.AllOf, openapi3.NewSchemaRef("", openapi3.NewStringSchema().WithPattern(expr)))
		}
	}

	property.Description = strings.Join(uniqueStrings(descriptions), "; ")
	if len(names) > 0 {
		property.Extensions = map[string]any{ExtensionRules: names}
	}
	return property, nil
}

func describePolicy(p rules.PasswordPolicy) string {
	parts := []string{fmt.Sprintf("minimum %d characters", p.MinLength)}
	if p.RequireLower {
		parts = append(parts, "a lowercase letter")
	}
	if p.RequireUpper {
		parts = append(parts, "an uppercase letter")
	}
	if p.RequireDigit {
		parts = append(parts, "a digit")
	}
	if p.RequireSpecial {
		parts = append(parts, "a special character")
	}
	return "requires " + strings.Join(parts, ", ")
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Names returns the sorted property names of schema.
func Names(schema *openapi3.Schema) []string {
	if schema == nil {
		return nil
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
