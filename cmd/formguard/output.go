package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// readValues loads a flat name→value map from a YAML or JSON file. "-"
// reads stdin. Scalars keep their source text, so digit strings such as
// 0123456701 are not reinterpreted as numbers.
func readValues(path string, stdin io.Reader) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}

	out := make(map[string]string, len(raw))
	for key, node := range raw {
		switch node.Kind {
		case yaml.ScalarNode:
			if node.Tag == "!!null" {
				out[key] = ""
				continue
			}
			out[key] = node.Value
		case yaml.AliasNode:
			if node.Alias == nil || node.Alias.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("parse values %s: %q must be a scalar", path, key)
			}
			out[key] = node.Alias.Value
		case 0:
			out[key] = ""
		default:
			return nil, fmt.Errorf("parse values %s: %q must be a scalar", path, key)
		}
	}
	return out, nil
}
