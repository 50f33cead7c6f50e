package validator

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formguard/pkg/rules"
)

// Binding ties a field name to its input element, its error element and the
// rules applied to its value. Empty ids fall back to the naming convention:
// the input id equals the field name and the error id is "<name>-error".
type Binding struct {
	Name    string
	InputID string
	ErrorID string
	Rules   []rules.Rule
}

// ErrorID returns the conventional error element id for a field.
func ErrorID(name string) string {
	return name + "-error"
}

// Result is the outcome of validating one field.
type Result struct {
	Valid   bool
	Message string
}

// FieldState is a snapshot of one registered field.
type FieldState struct {
	Name      string
	Value     string
	Message   string
	Valid     bool
	Evaluated bool
}

// FormState is a snapshot of every registered field plus the derived
// validity. A field that was never evaluated counts as invalid.
type FormState struct {
	Fields []FieldState
	Valid  bool
}

// Field returns the state of the named field.
func (s FormState) Field(name string) (FieldState, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldState{}, false
}

// Errors returns the current error messages keyed by field name.
func (s FormState) Errors() map[string]string {
	out := make(map[string]string)
	for _, field := range s.Fields {
		if field.Message != "" {
			out[field.Name] = field.Message
		}
	}
	return out
}

type field struct {
	name     string
	inputID  string
	rules    []rules.Rule
	input    Input
	feedback Feedback

	value     string
	message   string
	valid     bool
	evaluated bool
}

// Validator evaluates registered fields against their rules, reflects the
// outcome on the surface, and gates submission on overall validity.
//
// A Validator is driven from a single event loop and is not safe for
// concurrent use.
type Validator struct {
	surface Surface
	summary Feedback
	cfg     config

	fields []*field
	index  map[string]*field
	source EventSource
}

// New creates a Validator bound to surface.
func New(surface Surface, options ...Option) (*Validator, error) {
	if surface == nil {
		return nil, configErr("", errors.New("surface is required"))
	}

	cfg := config{
		successMessage: DefaultSuccessMessage,
		failureMessage: DefaultFailureMessage,
		resetOnSuccess: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	v := &Validator{
		surface: surface,
		cfg:     cfg,
		index:   make(map[string]*field),
	}

	if cfg.summaryID != "" {
		summary, ok := surface.Feedback(cfg.summaryID)
		if !ok {
			return nil, configErr(cfg.summaryID, ErrMissingSummary)
		}
		v.summary = summary
	}

	return v, nil
}

// Register associates rules with a field using the conventional element ids.
func (v *Validator) Register(name string, fieldRules ...rules.Rule) error {
	return v.RegisterBinding(Binding{Name: name, Rules: fieldRules})
}

// RegisterBinding associates rules with a field. It fails with a
// *ConfigurationError when the name is taken, either element is missing, or
// the rules are unusable.
func (v *Validator) RegisterBinding(b Binding) error {
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return configErr("", errors.New("field name is required"))
	}
	if _, exists := v.index[name]; exists {
		return configErr(name, ErrDuplicateField)
	}
	if len(b.Rules) == 0 {
		return configErr(name, ErrNoRules)
	}
	for _, rule := range b.Rules {
		if rule.IsZero() || rule.Message() == "" {
			return configErr(name, ErrInvalidRule)
		}
	}

	inputID := strings.TrimSpace(b.InputID)
	if inputID == "" {
		inputID = name
	}
	errorID := strings.TrimSpace(b.ErrorID)
	if errorID == "" {
		errorID = ErrorID(name)
	}

	input, ok := v.surface.Input(inputID)
	if !ok {
		return configErr(name, ErrMissingInput)
	}
	feedback, ok := v.surface.Feedback(errorID)
	if !ok {
		return configErr(name, ErrMissingFeedback)
	}

	f := &field{
		name:     name,
		inputID:  inputID,
		rules:    append([]rules.Rule(nil), b.Rules...),
		input:    input,
		feedback: feedback,
	}
	v.fields = append(v.fields, f)
	v.index[name] = f

	if v.source != nil {
		v.listen(f)
	}
	return nil
}

// Names lists registered fields in registration order.
func (v *Validator) Names() []string {
	names := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		names = append(names, f.name)
	}
	return names
}

// ValidateField reads the field's current value, applies its rules and
// updates the inline message and invalid indicator. Repeating the call for an
// unchanged value yields the same result.
func (v *Validator) ValidateField(name string) (Result, error) {
	f, ok := v.index[name]
	if !ok {
		return Result{}, configErr(name, ErrUnknownField)
	}
	return v.evaluate(f), nil
}

func (v *Validator) evaluate(f *field) Result {
	value := f.input.Value()
	outcome := rules.Check(value, f.rules...)

	f.value = value
	f.valid = outcome.Valid
	f.evaluated = true
	f.message = ""
	if !outcome.Valid {
		f.message = outcome.Message
	}

	if f.valid {
		f.feedback.Hide()
		f.input.SetInvalid(false)
	} else {
		f.feedback.Show(f.message, ToneError)
		f.input.SetInvalid(true)
	}

	return Result{Valid: f.valid, Message: f.message}
}

// ValidateAll evaluates every registered field, without short-circuiting, and
// returns their conjunction. The summary shows the failure message when any
// field is invalid and is hidden otherwise.
func (v *Validator) ValidateAll() bool {
	valid := len(v.fields) > 0
	for _, f := range v.fields {
		if !v.evaluate(f).Valid {
			valid = false
		}
	}

	if v.summary != nil {
		if valid {
			v.summary.Hide()
		} else {
			v.summary.Show(v.cfg.failureMessage, ToneError)
		}
	}
	return valid
}

// OnSubmit handles a submit event. The default action is always suppressed;
// the success hook, reset and success message only run when every field
// validates. A blocked submit leaves values untouched.
func (v *Validator) OnSubmit(ev Event) {
	if ev != nil {
		ev.PreventDefault()
	}

	if !v.ValidateAll() {
		return
	}

	if v.cfg.onSuccess != nil {
		v.cfg.onSuccess(Submission{Values: v.values()})
	}
	if v.cfg.resetOnSuccess {
		v.reset()
	}
	if v.summary != nil {
		v.summary.Show(v.cfg.successMessage, ToneSuccess)
	}
}

// Attach registers input and submit handlers on src. Fields registered after
// Attach are wired as they are added.
func (v *Validator) Attach(src EventSource) {
	if src == nil {
		return
	}
	v.source = src
	for _, f := range v.fields {
		v.listen(f)
	}
	src.OnSubmit(v.OnSubmit)
}

func (v *Validator) listen(f *field) {
	v.source.OnInput(f.inputID, func() {
		v.evaluate(f)
	})
}

// State returns a snapshot of the form.
func (v *Validator) State() FormState {
	state := FormState{
		Fields: make([]FieldState, 0, len(v.fields)),
		Valid:  len(v.fields) > 0,
	}
	for _, f := range v.fields {
		state.Fields = append(state.Fields, FieldState{
			Name:      f.name,
			Value:     f.value,
			Message:   f.message,
			Valid:     f.valid,
			Evaluated: f.evaluated,
		})
		if !f.evaluated || !f.valid {
			state.Valid = false
		}
	}
	return state
}

// Valid reports the conjunction of the most recent evaluation of every field.
func (v *Validator) Valid() bool {
	return v.State().Valid
}

func (v *Validator) values() map[string]string {
	out := make(map[string]string, len(v.fields))
	for _, f := range v.fields {
		out[f.name] = strings.TrimSpace(f.value)
	}
	return out
}

func (v *Validator) reset() {
	if resetter, ok := v.surface.(Resetter); ok {
		resetter.Reset()
	} else {
		for _, f := range v.fields {
			f.input.SetValue("")
		}
	}
	for _, f := range v.fields {
		f.feedback.Hide()
		f.input.SetInvalid(false)
		f.value = f.input.Value()
		f.message = ""
		f.valid = false
		f.evaluated = false
	}
}
