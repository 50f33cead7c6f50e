package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Built-in rule names. Variants observed across form drafts are registered as
// independent rules; none of them is treated as canonical.
const (
	RuleName           = "name"
	RuleEmail          = "email"
	RulePhone          = "phone"
	RulePassword       = "password"
	RuleStrongPassword = "strong-password"
	RuleMessage        = "message"
	RuleShortText      = "short-text"
)

var (
	nameRule = MustPattern(RuleName, `^[A-Za-z\s]+$`, "only letters and spaces allowed")

	emailRule = MustPattern(RuleEmail, `^[^\s@]+@[^\s@]+\.[^\s@]+$`, "enter a valid email address")

	phoneRule = MustPattern(RulePhone, `^\d{10,15}$`, "phone number must be 10–15 digits")

	passwordRule = Password(
		RulePassword,
		"at least 8 characters, one uppercase, one lowercase, one number",
		PasswordPolicy{MinLength: 8, RequireLower: true, RequireUpper: true, RequireDigit: true},
	)

	strongPasswordRule = Password(
		RuleStrongPassword,
		"at least 8 characters, one uppercase, one lowercase, one number, one special character",
		PasswordPolicy{MinLength: 8, RequireLower: true, RequireUpper: true, RequireDigit: true, RequireSpecial: true},
	)
)

// NameRule accepts ASCII letters and spaces only. Leading and trailing
// Unicode whitespace is trimmed before the check, but interior whitespace must
// be ASCII: a name holding a no-break space is rejected.
func NameRule() Rule { return nameRule }

// EmailRule accepts addresses shaped like local@domain.tld.
func EmailRule() Rule { return emailRule }

// PhoneRule accepts 10 to 15 ASCII digits.
func PhoneRule() Rule { return phoneRule }

// PasswordRule requires 8+ characters with lower, upper and digit classes.
func PasswordRule() Rule { return passwordRule }

// StrongPasswordRule additionally requires a special character.
func StrongPasswordRule() Rule { return strongPasswordRule }

// Catalog stores named rules so form definitions can reference them.
type Catalog struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{rules: make(map[string]Rule)}
}

// DefaultCatalog returns a fresh catalog seeded with the built-in rules.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.MustRegister(nameRule)
	c.MustRegister(emailRule)
	c.MustRegister(phoneRule)
	c.MustRegister(passwordRule)
	c.MustRegister(strongPasswordRule)
	c.MustRegister(MinLength(10).named(RuleMessage))
	c.MustRegister(MinLength(2).named(RuleShortText))
	return c
}

func (r Rule) named(name string) Rule {
	r.name = name
	return r
}

// Register adds a rule under its Name. Duplicate names return an error.
func (c *Catalog) Register(rule Rule) error {
	if rule.IsZero() {
		return fmt.Errorf("rules: cannot register an empty rule")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.rules[rule.name]; exists {
		return fmt.Errorf("rules: rule %q already registered", rule.name)
	}
	c.rules[rule.name] = rule
	return nil
}

// MustRegister panics on registration failure.
func (c *Catalog) MustRegister(rule Rule) {
	if err := c.Register(rule); err != nil {
		panic(err)
	}
}

// Lookup retrieves a rule by name.
func (c *Catalog) Lookup(name string) (Rule, bool) {
	if c == nil {
		return Rule{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	rule, ok := c.rules[strings.TrimSpace(name)]
	return rule, ok
}

// Names lists registered rule names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.rules))
	for name := range c.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile resolves a declarative spec into a rule.
func (c *Catalog) Compile(spec Spec) (Rule, error) {
	var (
		rule Rule
		err  error
	)
	switch spec.Kind() {
	case KindUse:
		var ok bool
		rule, ok = c.Lookup(spec.Use)
		if !ok {
			return Rule{}, fmt.Errorf("rules: unknown rule %q", spec.Use)
		}
	case KindPattern:
		name := spec.Name
		if name == "" {
			name = "pattern"
		}
		message := spec.Message
		if message == "" {
			message = "invalid format"
		}
		rule, err = Pattern(name, spec.Pattern, message)
		if err != nil {
			return Rule{}, err
		}
	case KindMinLength:
		rule = MinLength(spec.MinLength)
	case KindMaxLength:
		rule = MaxLength(spec.MaxLength)
	case KindPassword:
		name := spec.Name
		if name == "" {
			name = RulePassword
		}
		rule = Password(name, spec.Message, *spec.Password)
	default:
		return Rule{}, fmt.Errorf("rules: spec must set exactly one of use, pattern, minLength, maxLength or password")
	}

	if spec.Name != "" && spec.Kind() != KindPattern && spec.Kind() != KindPassword {
		rule = rule.named(spec.Name)
	}
	if rule.message == "" && spec.Message == "" {
		return Rule{}, fmt.Errorf("rules: rule %q has no failure message", rule.name)
	}
	return rule.WithMessage(spec.Message), nil
}

// CompileAll resolves specs in order, failing on the first invalid entry.
func (c *Catalog) CompileAll(specs []Spec) ([]Rule, error) {
	out := make([]Rule, 0, len(specs))
	for idx, spec := range specs {
		rule, err := c.Compile(spec)
		if err != nil {
			return nil, fmt.Errorf("rules: spec %d: %w", idx, err)
		}
		out = append(out, rule)
	}
	return out, nil
}
