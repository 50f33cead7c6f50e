package formspec

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/rules"
)

// Violation is one problem found in a definition file.
type Violation struct {
	File     string `json:"file"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s -> %s", v.File, v.Location, v.Message)
}

// Lint checks every definition file under fsys without stopping at the first
// problem: parse errors, structural errors, rules the catalog cannot compile,
// defaults that fail their own rules, and form ids declared twice. Violations
// are sorted by file, then location.
func Lint(fsys fs.FS, catalog *rules.Catalog) ([]Violation, error) {
	if catalog == nil {
		catalog = rules.DefaultCatalog()
	}

	var (
		violations []Violation
		owners     = make(map[string]string)
	)
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
			violations = append(violations, Violation{File: path, Location: "document", Message: err.Error()})
			return nil
		}
		if len(doc.Forms) == 0 {
			violations = append(violations, Violation{File: path, Location: "forms", Message: "no forms defined"})
		}

		for rawID, raw := range doc.Forms {
			id := strings.TrimSpace(rawID)
			location := "forms." + rawID
			if owner, exists := owners[id]; exists {
				violations = append(violations, Violation{File: path, Location: location, Message: fmt.Sprintf("form %q already defined in %s", id, owner)})
				continue
			}
			owners[id] = path
			violations = append(violations, lintForm(path, location, raw, id, catalog)...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].File == violations[j].File {
			if violations[i].Location == violations[j].Location {
				return violations[i].Message < violations[j].Message
			}
			return violations[i].Location < violations[j].Location
		}
		return violations[i].File < violations[j].File
	})
	return violations, nil
}

func lintForm(file, location string, raw model.FormModel, id string, catalog *rules.Catalog) []Violation {
	if id == "" {
		return []Violation{{File: file, Location: location, Message: "form id is empty"}}
	}
	form, err := normaliseForm(raw, id, file)
	if err != nil {
		return []Violation{{File: file, Location: location, Message: strings.TrimPrefix(err.Error(), "formspec: ")}}
	}

	var out []Violation
	for _, field := range form.Fields {
		fieldLocation := location + ".fields." + field.Name
		compiled, err := catalog.CompileAll(field.Rules)
		if err != nil {
			out = append(out, Violation{File: file, Location: fieldLocation, Message: strings.TrimPrefix(err.Error(), "rules: ")})
			continue
		}
		if field.Default == "" {
			continue
		}
		if outcome := rules.Check(field.Default, compiled...); !outcome.Valid {
			out = append(out, Violation{File: file, Location: fieldLocation + ".default", Message: fmt.Sprintf("default %q fails its rules: %s", field.Default, outcome.Message)})
		}
	}
	return out
}
