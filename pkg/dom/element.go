package dom

import (
	"sort"

	"github.com/goliatone/go-formguard/pkg/validator"
)

// Kind classifies elements in a Document.
type Kind string

const (
	KindInput    Kind = "input"
	KindFeedback Kind = "feedback"
)

// Class names toggled by the validator-facing methods.
const (
	ClassInvalid = "invalid"
	ClassError   = "error"
	ClassSuccess = "success"
)

// Element is a node addressable by id. Inputs carry a value; feedback
// elements carry text and a hidden flag. Revision increases only when a
// visible property actually changes.
type Element struct {
	ID   string
	Kind Kind

	value        string
	defaultValue string
	text         string
	hidden       bool
	classes      map[string]struct{}
	attrs        map[string]string
	revision     int
}

func newElement(id string, kind Kind) *Element {
	el := &Element{
		ID:      id,
		Kind:    kind,
		classes: make(map[string]struct{}),
		attrs:   make(map[string]string),
	}
	if kind == KindFeedback {
		el.hidden = true
	}
	return el
}

var (
	_ validator.Input    = (*Element)(nil)
	_ validator.Feedback = (*Element)(nil)
)

// Value returns the current input value.
func (e *Element) Value() string { return e.value }

// SetValue replaces the input value.
func (e *Element) SetValue(value string) {
	if e.value == value {
		return
	}
	e.value = value
	e.revision++
}

// SetInvalid toggles the invalid class and the aria-invalid attribute.
func (e *Element) SetInvalid(invalid bool) {
	changed := e.toggleClass(ClassInvalid, invalid)
	want := "false"
	if invalid {
		want = "true"
	}
	if e.attrs["aria-invalid"] != want {
		e.attrs["aria-invalid"] = want
		changed = true
	}
	if changed {
		e.revision++
	}
}

// Show displays text with the tone's class.
func (e *Element) Show(text string, tone validator.Tone) {
	changed := false
	if e.text != text {
		e.text = text
		changed = true
	}
	if e.hidden {
		e.hidden = false
		changed = true
	}
	if e.toggleClass(ClassError, tone == validator.ToneError) {
		changed = true
	}
	if e.toggleClass(ClassSuccess, tone == validator.ToneSuccess) {
		changed = true
	}
	if changed {
		e.revision++
	}
}

// Hide clears the text and hides the element.
func (e *Element) Hide() {
	changed := false
	if e.text != "" {
		e.text = ""
		changed = true
	}
	if !e.hidden {
		e.hidden = true
		changed = true
	}
	if e.toggleClass(ClassError, false) {
		changed = true
	}
	if e.toggleClass(ClassSuccess, false) {
		changed = true
	}
	if changed {
		e.revision++
	}
}

// Text returns the displayed message.
func (e *Element) Text() string { return e.text }

// Hidden reports whether the element is hidden.
func (e *Element) Hidden() bool { return e.hidden }

// Invalid reports whether the invalid indicator is set.
func (e *Element) Invalid() bool { return e.HasClass(ClassInvalid) }

// HasClass reports whether class is present.
func (e *Element) HasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

// Classes returns the class list in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for class := range e.classes {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) string { return e.attrs[name] }

// Revision counts visible changes applied to the element.
func (e *Element) Revision() int { return e.revision }

func (e *Element) toggleClass(class string, on bool) bool {
	_, present := e.classes[class]
	switch {
	case on && !present:
		e.classes[class] = struct{}{}
		return true
	case !on && present:
		delete(e.classes, class)
		return true
	default:
		return false
	}
}
