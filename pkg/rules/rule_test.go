package rules

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltInRules(t *testing.T) {
	cases := []struct {
		name  string
		rule  Rule
		value string
		want  Outcome
	}{
		{"name with digit", NameRule(), "Jo3", Outcome{Message: "only letters and spaces allowed"}},
		{"name with spaces", NameRule(), "Jane Doe", Outcome{Valid: true}},
		{"name trimmed", NameRule(), "  Jane  ", Outcome{Valid: true}},
		{"name trims unicode space", NameRule(), "\u00a0Jane\u00a0", Outcome{Valid: true}},
		{"name with interior no-break space", NameRule(), "Jane\u00a0Doe", Outcome{Message: "only letters and spaces allowed"}},
		{"email", EmailRule(), "a@b.com", Outcome{Valid: true}},
		{"email without tld", EmailRule(), "a@b", Outcome{Message: "enter a valid email address"}},
		{"email with space", EmailRule(), "a b@c.com", Outcome{Message: "enter a valid email address"}},
		{"phone too short", PhoneRule(), "12345", Outcome{Message: "phone number must be 10–15 digits"}},
		{"phone ten digits", PhoneRule(), "1234567890", Outcome{Valid: true}},
		{"phone fifteen digits", PhoneRule(), "123456789012345", Outcome{Valid: true}},
		{"phone sixteen digits", PhoneRule(), "1234567890123456", Outcome{Message: "phone number must be 10–15 digits"}},
		{"phone with dashes", PhoneRule(), "555-123-4567", Outcome{Message: "phone number must be 10–15 digits"}},
		{"password no upper", PasswordRule(), "abc12345", Outcome{Message: "at least 8 characters, one uppercase, one lowercase, one number"}},
		{"password valid", PasswordRule(), "Abc12345", Outcome{Valid: true}},
		{"password short", PasswordRule(), "Ab1", Outcome{Message: "at least 8 characters, one uppercase, one lowercase, one number"}},
		{"strong password without special", StrongPasswordRule(), "Abc12345", Outcome{Message: "at least 8 characters, one uppercase, one lowercase, one number, one special character"}},
		{"strong password", StrongPasswordRule(), "Abc12345!", Outcome{Valid: true}},
		{"min length short", MinLength(10), "too short", Outcome{Message: "please enter 10+ characters"}},
		{"min length padded", MinLength(10), "   123456789   ", Outcome{Message: "please enter 10+ characters"}},
		{"min length counts runes", MinLength(2), "éé", Outcome{Valid: true}},
		{"max length", MaxLength(3), "abcd", Outcome{Message: "please enter at most 3 characters"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.rule.Evaluate(tc.value)); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptyInputAlwaysFails(t *testing.T) {
	always := MustNew("anything", "required", func(string) bool { return true })
	for _, rule := range []Rule{always, NameRule(), EmailRule(), PhoneRule(), PasswordRule(), MaxLength(5)} {
		for _, value := range []string{"", "   ", "\t\n"} {
			out := rule.Evaluate(value)
			if out.Valid {
				t.Fatalf("%s accepted %q", rule.Name(), value)
			}
			if out.Message != rule.Message() {
				t.Fatalf("%s: expected message %q, got %q", rule.Name(), rule.Message(), out.Message)
			}
		}
	}
}

func TestPredicateSeesTrimmedValue(t *testing.T) {
	var seen string
	rule := MustNew("spy", "bad", func(v string) bool {
		seen = v
		return true
	})
	rule.Evaluate("  hello \n")
	if seen != "hello" {
		t.Fatalf("expected trimmed value, got %q", seen)
	}
}

func TestCheckFirstFailureWins(t *testing.T) {
	out := Check("ab", NameRule(), MinLength(3), MaxLength(1))
	if diff := cmp.Diff(Outcome{Message: "please enter 3+ characters"}, out); diff != "" {
		t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
	}
	if Check("anything").Valid {
		t.Fatal("no rules must not validate")
	}
}

func TestNewRejectsMisconfiguration(t *testing.T) {
	if _, err := New(" ", "msg", func(string) bool { return true }); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := New("x", "msg", nil); err == nil {
		t.Fatal("expected error for nil predicate")
	}
	if _, err := Pattern("bad", "([", "msg"); err == nil || !strings.Contains(err.Error(), "compile pattern") {
		t.Fatalf("expected compile error, got %v", err)
	}
	if !(Rule{}).IsZero() {
		t.Fatal("zero rule must report IsZero")
	}
}

func TestWithMessageKeepsPredicate(t *testing.T) {
	rule := NameRule().WithMessage("letters please")
	if got := rule.Evaluate("R2D2").Message; got != "letters please" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := NameRule().WithMessage("  ").Message(); got != "only letters and spaces allowed" {
		t.Fatalf("blank override must keep message, got %q", got)
	}
	if NameRule().Message() != "only letters and spaces allowed" {
		t.Fatal("WithMessage must not mutate the shared rule")
	}
}

func TestConstraints(t *testing.T) {
	policy := PasswordPolicy{MinLength: 8, RequireLower: true, RequireUpper: true, RequireDigit: true}
	cases := map[string]struct {
		rule Rule
		want Constraint
	}{
		"pattern":  {PhoneRule(), Constraint{Pattern: `^\d{10,15}$`}},
		"min":      {MinLength(10), Constraint{MinLength: 10}},
		"max":      {MaxLength(4), Constraint{MaxLength: 4}},
		"password": {PasswordRule(), Constraint{MinLength: 8, Password: &policy}},
		"custom":   {MustNew("custom", "bad", func(string) bool { return true }), Constraint{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.rule.Constraint()); diff != "" {
				t.Fatalf("constraint mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if !(Constraint{}).IsZero() || (Constraint{MaxLength: 1}).IsZero() {
		t.Fatal("IsZero mismatch")
	}
}
