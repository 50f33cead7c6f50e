package vanilla

import (
	"strings"

	"github.com/goliatone/go-formguard/pkg/model"
)

func controlType(fieldType model.FieldType) string {
	switch fieldType {
	case model.FieldTypeEmail, model.FieldTypeTel, model.FieldTypePassword:
		return string(fieldType)
	default:
		return "text"
	}
}

func autocompleteHint(field model.Field) string {
	switch field.Type {
	case model.FieldTypeEmail:
		return "email"
	case model.FieldTypeTel:
		return "tel"
	case model.FieldTypePassword:
		return "new-password"
	}
	if field.Name == "name" {
		return "name"
	}
	return ""
}

func describedBy(ids ...string) string {
	keep := make([]string, 0, len(ids))
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			keep = append(keep, trimmed)
		}
	}
	return strings.Join(keep, " ")
}
