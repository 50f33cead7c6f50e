package formspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/validator"
)

// Store holds form definitions keyed by id.
type Store struct {
	forms map[string]model.FormModel
}

type documentFile struct {
	Forms map[string]model.FormModel `json:"forms" yaml:"forms"`
}

// LoadFS walks fsys and parses every JSON/YAML definition file. Decorators run
// on each form after validation. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS, decorators ...model.Decorator) (*Store, error) {
	store := &Store{forms: make(map[string]model.FormModel)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formspec: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawID, raw := range doc.Forms {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("formspec: file %s defines an empty form id", path)
			}
			if _, exists := store.forms[id]; exists {
				return fmt.Errorf("formspec: duplicate form %q (file %s)", id, path)
			}

			form, err := normaliseForm(raw, id, path)
			if err != nil {
				return err
			}
			if err := model.Apply(&form, decorators...); err != nil {
				return fmt.Errorf("formspec: decorate form %q (file %s): %w", id, path, err)
			}
			store.forms[id] = form
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Form returns a copy of the definition for id.
func (s *Store) Form(id string) (model.FormModel, bool) {
	if s == nil {
		return model.FormModel{}, false
	}
	form, ok := s.forms[strings.TrimSpace(id)]
	if !ok {
		return model.FormModel{}, false
	}
	return form.Clone(), true
}

// IDs lists form ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// Overlay copies every form from other into s, replacing forms that share an
// id. Used to let a local definitions directory override the embedded ones.
func (s *Store) Overlay(other *Store) {
	if s == nil || other == nil {
		return
	}
	if s.forms == nil {
		s.forms = make(map[string]model.FormModel, len(other.forms))
	}
	for id, form := range other.forms {
		s.forms[id] = form
	}
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("formspec: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("formspec: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseForm(raw model.FormModel, id, source string) (model.FormModel, error) {
	if declared := strings.TrimSpace(raw.ID); declared != "" && declared != id {
		return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) declares mismatched id %q", id, source, declared)
	}
	if len(raw.Fields) == 0 {
		return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) has no fields", id, source)
	}

	form := raw
	form.ID = id
	form.Fields = make([]model.Field, 0, len(raw.Fields))
	form.Metadata = cloneStrings(raw.Metadata)

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, field := range raw.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) field %d has no name", id, source, idx)
		}
		if _, exists := seen[name]; exists {
			return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) defines duplicate field %q", id, source, name)
		}
		seen[name] = struct{}{}
		if name == model.SummaryID {
			return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) field %q collides with the form status element", id, source, name)
		}

		if field.Type == "" {
			field.Type = model.FieldTypeText
		}
		if !field.Type.Valid() {
			return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) field %q has unknown type %q", id, source, name, field.Type)
		}
		if len(field.Rules) == 0 {
			return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) field %q has no rules", id, source, name)
		}

		field.Name = name
		field.Rules = append([]rules.Spec(nil), field.Rules...)
		field.Metadata = cloneStrings(field.Metadata)
		form.Fields = append(form.Fields, field)
	}

	for _, field := range form.Fields {
		if _, exists := seen[validator.ErrorID(field.Name)]; exists {
			return model.FormModel{}, fmt.Errorf("formspec: form %q (file %s) field %q collides with the error element of %q", id, source, validator.ErrorID(field.Name), field.Name)
		}
	}

	return form, nil
}

func cloneStrings(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
