package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpecKind identifies which branch of a Spec is populated.
type SpecKind string

const (
	KindInvalid   SpecKind = ""
	KindUse       SpecKind = "use"
	KindPattern   SpecKind = "pattern"
	KindMinLength SpecKind = "minLength"
	KindMaxLength SpecKind = "maxLength"
	KindPassword  SpecKind = "password"
)

// Spec is the declarative form of a rule as it appears in form definition
// files. A bare string is shorthand for {use: <string>}.
type Spec struct {
	Use       string          `json:"use,omitempty" yaml:"use,omitempty"`
	Name      string          `json:"name,omitempty" yaml:"name,omitempty"`
	Pattern   string          `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength int             `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength int             `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Password  *PasswordPolicy `json:"password,omitempty" yaml:"password,omitempty"`
	Message   string          `json:"message,omitempty" yaml:"message,omitempty"`
}

// Kind reports the populated branch, or KindInvalid when zero or several are
// set.
func (s Spec) Kind() SpecKind {
	kind := KindInvalid
	set := 0
	if strings.TrimSpace(s.Use) != "" {
		kind, set = KindUse, set+1
	}
	if s.Pattern != "" {
		kind, set = KindPattern, set+1
	}
	if s.MinLength > 0 {
		kind, set = KindMinLength, set+1
	}
	if s.MaxLength > 0 {
		kind, set = KindMaxLength, set+1
	}
	if s.Password != nil {
		kind, set = KindPassword, set+1
	}
	if set != 1 {
		return KindInvalid
	}
	return kind
}

type rawSpec Spec

// UnmarshalYAML accepts either a scalar rule name or a mapping.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Spec{Use: strings.TrimSpace(node.Value)}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("rules: line %d: rule must be a name or a mapping", node.Line)
	}
	var raw rawSpec
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = Spec(raw)
	return nil
}

// UnmarshalJSON accepts either a JSON string rule name or an object.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Spec{Use: strings.TrimSpace(name)}
		return nil
	}
	var raw rawSpec
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("rules: decode spec: %w", err)
	}
	*s = Spec(raw)
	return nil
}

// PasswordPolicy uses camelCase keys in definition files.
type passwordPolicyFile struct {
	MinLength      int  `json:"minLength" yaml:"minLength"`
	RequireLower   bool `json:"requireLower" yaml:"requireLower"`
	RequireUpper   bool `json:"requireUpper" yaml:"requireUpper"`
	RequireDigit   bool `json:"requireDigit" yaml:"requireDigit"`
	RequireSpecial bool `json:"requireSpecial" yaml:"requireSpecial"`
}

// UnmarshalYAML decodes the camelCase policy keys.
func (p *PasswordPolicy) UnmarshalYAML(node *yaml.Node) error {
	var raw passwordPolicyFile
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*p = PasswordPolicy(raw)
	return nil
}

// UnmarshalJSON decodes the camelCase policy keys.
func (p *PasswordPolicy) UnmarshalJSON(data []byte) error {
	var raw passwordPolicyFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PasswordPolicy(raw)
	return nil
}
