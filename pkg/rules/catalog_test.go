package rules

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestDefaultCatalogNames(t *testing.T) {
	want := []string{"email", "message", "name", "password", "phone", "short-text", "strong-password"}
	if diff := cmp.Diff(want, DefaultCatalog().Names()); diff != "" {
		t.Fatalf("catalog names mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogRegisterDuplicate(t *testing.T) {
	c := NewCatalog()
	if err := c.Register(NameRule()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := c.Register(NameRule()); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := c.Register(Rule{}); err == nil {
		t.Fatal("expected error for empty rule")
	}
}

func TestCatalogVariantsAreIndependent(t *testing.T) {
	c := DefaultCatalog()
	message, _ := c.Lookup(RuleMessage)
	short, _ := c.Lookup(RuleShortText)

	if message.Evaluate("hello").Valid {
		t.Fatal("message rule needs 10+ characters")
	}
	if !short.Evaluate("Jo").Valid {
		t.Fatal("short-text rule accepts 2+ characters")
	}
	if got := short.Evaluate("J").Message; got != "please enter 2+ characters" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCompile(t *testing.T) {
	c := DefaultCatalog()
	cases := []struct {
		name    string
		spec    Spec
		value   string
		want    Outcome
		wantErr bool
	}{
		{name: "use", spec: Spec{Use: "name"}, value: "Jo3", want: Outcome{Message: "only letters and spaces allowed"}},
		{name: "use with message", spec: Spec{Use: "phone", Message: "digits only"}, value: "abc", want: Outcome{Message: "digits only"}},
		{name: "pattern", spec: Spec{Pattern: `^[A-Z]{3}$`, Message: "three capitals"}, value: "abc", want: Outcome{Message: "three capitals"}},
		{name: "pattern default message", spec: Spec{Pattern: `^x$`}, value: "y", want: Outcome{Message: "invalid format"}},
		{name: "min length", spec: Spec{MinLength: 2}, value: "J", want: Outcome{Message: "please enter 2+ characters"}},
		{name: "max length", spec: Spec{MaxLength: 2, Message: "too long"}, value: "abc", want: Outcome{Message: "too long"}},
		{name: "password", spec: Spec{Password: &PasswordPolicy{MinLength: 4, RequireDigit: true}, Message: "4+ with a digit"}, value: "abc1", want: Outcome{Valid: true}},
		{name: "password without message", spec: Spec{Password: &PasswordPolicy{MinLength: 4}}, wantErr: true},
		{name: "unknown", spec: Spec{Use: "zip"}, wantErr: true},
		{name: "empty", spec: Spec{}, wantErr: true},
		{name: "ambiguous", spec: Spec{Use: "name", MinLength: 2}, wantErr: true},
		{name: "bad pattern", spec: Spec{Pattern: "(["}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := c.Compile(tc.spec)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if diff := cmp.Diff(tc.want, rule.Evaluate(tc.value)); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileAllReportsIndex(t *testing.T) {
	_, err := DefaultCatalog().CompileAll([]Spec{{Use: "name"}, {Use: "nope"}})
	if err == nil || err.Error() != `rules: spec 1: rules: unknown rule "nope"` {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSpecDecoding(t *testing.T) {
	want := []Spec{
		{Use: "name"},
		{MinLength: 2, Message: "two or more"},
		{Password: &PasswordPolicy{MinLength: 12, RequireSpecial: true}},
	}

	var fromYAML []Spec
	doc := "- name\n- minLength: 2\n  message: two or more\n- password:\n    minLength: 12\n    requireSpecial: true\n"
	if err := yaml.Unmarshal([]byte(doc), &fromYAML); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if diff := cmp.Diff(want, fromYAML); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}

	var fromJSON []Spec
	raw := `["name", {"minLength": 2, "message": "two or more"}, {"password": {"minLength": 12, "requireSpecial": true}}]`
	if err := json.Unmarshal([]byte(raw), &fromJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if diff := cmp.Diff(want, fromJSON); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	var bad []Spec
	if err := yaml.Unmarshal([]byte("- [1, 2]\n"), &bad); err == nil {
		t.Fatal("expected error for sequence spec")
	}
}
