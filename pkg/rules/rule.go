package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Predicate reports whether a trimmed, non-empty value satisfies a rule.
type Predicate func(value string) bool

// Rule pairs a pure predicate with the message shown when it fails. Rules are
// immutable once constructed and safe to share between forms.
type Rule struct {
	name       string
	message    string
	test       Predicate
	constraint Constraint
}

// Constraint describes a rule declaratively so it can be exported to other
// validators. Rules built from an arbitrary predicate have a zero Constraint.
type Constraint struct {
	Pattern   string
	MinLength int
	MaxLength int
	Password  *PasswordPolicy
}

// IsZero reports whether nothing is known about the rule's predicate.
func (c Constraint) IsZero() bool {
	return c.Pattern == "" && c.MinLength == 0 && c.MaxLength == 0 && c.Password == nil
}

// Outcome is the result of evaluating a single value against a rule.
type Outcome struct {
	Valid   bool
	Message string
}

// New builds a rule from a predicate. Name and message are trimmed; a rule
// without a predicate is rejected so misconfiguration surfaces at setup.
func New(name, message string, test Predicate) (Rule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Rule{}, fmt.Errorf("rules: name is required")
	}
	if test == nil {
		return Rule{}, fmt.Errorf("rules: rule %q has no predicate", name)
	}
	return Rule{
		name:    name,
		message: strings.TrimSpace(message),
		test:    test,
	}, nil
}

// MustNew panics when New fails. Useful for package-level rule tables.
func MustNew(name, message string, test Predicate) Rule {
	rule, err := New(name, message, test)
	if err != nil {
		panic(err)
	}
	return rule
}

// Pattern builds a rule that passes when the value matches expr.
func Pattern(name, expr, message string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("rules: rule %q: compile pattern: %w", name, err)
	}
	rule, err := New(name, message, re.MatchString)
	if err != nil {
		return Rule{}, err
	}
	rule.constraint = Constraint{Pattern: expr}
	return rule, nil
}

// MustPattern panics when Pattern fails.
func MustPattern(name, expr, message string) Rule {
	rule, err := Pattern(name, expr, message)
	if err != nil {
		panic(err)
	}
	return rule
}

// Name returns the rule identifier.
func (r Rule) Name() string { return r.name }

// Message returns the failure message.
func (r Rule) Message() string { return r.message }

// Constraint returns the declarative form of the rule, when known.
func (r Rule) Constraint() Constraint { return r.constraint }

// IsZero reports whether the rule was never constructed.
func (r Rule) IsZero() bool { return r.test == nil }

// WithMessage returns a copy of the rule reporting a different message.
func (r Rule) WithMessage(message string) Rule {
	if trimmed := strings.TrimSpace(message); trimmed != "" {
		r.message = trimmed
	}
	return r
}

// Evaluate trims the value and applies the predicate. Empty input always
// fails, even when the predicate would vacuously accept it.
func (r Rule) Evaluate(value string) Outcome {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || r.test == nil || !r.test(trimmed) {
		return Outcome{Valid: false, Message: r.message}
	}
	return Outcome{Valid: true}
}

// Check evaluates rules in order and stops at the first failure.
func Check(value string, rules ...Rule) Outcome {
	if len(rules) == 0 {
		return Outcome{Valid: false}
	}
	for _, rule := range rules {
		if out := rule.Evaluate(value); !out.Valid {
			return out
		}
	}
	return Outcome{Valid: true}
}

// MinLength passes when the trimmed value has at least n characters.
func MinLength(n int) Rule {
	rule := MustNew(
		fmt.Sprintf("min-length:%d", n),
		fmt.Sprintf("please enter %d+ characters", n),
		func(value string) bool {
			return utf8.RuneCountInString(value) >= n
		},
	)
	rule.constraint = Constraint{MinLength: n}
	return rule
}

// MaxLength passes when the trimmed value has at most n characters.
func MaxLength(n int) Rule {
	rule := MustNew(
		fmt.Sprintf("max-length:%d", n),
		fmt.Sprintf("please enter at most %d characters", n),
		func(value string) bool {
			return utf8.RuneCountInString(value) <= n
		},
	)
	rule.constraint = Constraint{MaxLength: n}
	return rule
}

// PasswordPolicy describes the character classes a password must contain.
type PasswordPolicy struct {
	MinLength      int
	RequireLower   bool
	RequireUpper   bool
	RequireDigit   bool
	RequireSpecial bool
}

// Password builds a rule enforcing policy.
func Password(name, message string, policy PasswordPolicy) Rule {
	rule := MustNew(name, message, policy.Satisfied)
	rule.constraint = Constraint{MinLength: policy.MinLength, Password: &policy}
	return rule
}

// Satisfied reports whether value meets every requirement of the policy.
func (p PasswordPolicy) Satisfied(value string) bool {
	if utf8.RuneCountInString(value) < p.MinLength {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			special = true
		}
	}
	if p.RequireLower && !lower {
		return false
	}
	if p.RequireUpper && !upper {
		return false
	}
	if p.RequireDigit && !digit {
		return false
	}
	if p.RequireSpecial && !special {
		return false
	}
	return true
}
