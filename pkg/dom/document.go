package dom

import (
	"fmt"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validator"
)

// Event is the submit event delivered to listeners.
type Event struct {
	defaultPrevented bool
}

var _ validator.Event = (*Event)(nil)

// PreventDefault suppresses the default submit action.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener suppressed the default action.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Document is an in-memory element tree with synchronous event dispatch. All
// listeners run on the caller's goroutine, in registration order, before the
// dispatching call returns.
type Document struct {
	elements map[string]*Element
	order    []string

	inputListeners  map[string][]func()
	submitListeners []func(validator.Event)
}

var (
	_ validator.Surface     = (*Document)(nil)
	_ validator.Resetter    = (*Document)(nil)
	_ validator.EventSource = (*Document)(nil)
)

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		elements:       make(map[string]*Element),
		inputListeners: make(map[string][]func()),
	}
}

// FromForm builds the element tree for a form: one input and one error
// element per field plus the summary element.
func FromForm(form model.FormModel) (*Document, error) {
	doc := NewDocument()
	for _, field := range form.Fields {
		if _, err := doc.AddInput(field.Name, field.Default); err != nil {
			return nil, err
		}
		if _, err := doc.AddFeedback(validator.ErrorID(field.Name)); err != nil {
			return nil, err
		}
	}
	if _, err := doc.AddFeedback(model.SummaryID); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddInput appends an input element holding defaultValue.
func (d *Document) AddInput(id, defaultValue string) (*Element, error) {
	el, err := d.add(id, KindInput)
	if err != nil {
		return nil, err
	}
	el.value = defaultValue
	el.defaultValue = defaultValue
	return el, nil
}

// AddFeedback appends a hidden feedback element.
func (d *Document) AddFeedback(id string) (*Element, error) {
	return d.add(id, KindFeedback)
}

func (d *Document) add(id string, kind Kind) (*Element, error) {
	if id == "" {
		return nil, fmt.Errorf("dom: element id is required")
	}
	if _, exists := d.elements[id]; exists {
		return nil, fmt.Errorf("dom: duplicate element id %q", id)
	}
	el := newElement(id, kind)
	d.elements[id] = el
	d.order = append(d.order, id)
	return el, nil
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// Elements returns every element in insertion order.
func (d *Document) Elements() []*Element {
	out := make([]*Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}

// Input resolves an input element.
func (d *Document) Input(id string) (validator.Input, bool) {
	el, ok := d.elements[id]
	if !ok || el.Kind != KindInput {
		return nil, false
	}
	return el, true
}

// Feedback resolves a feedback element.
func (d *Document) Feedback(id string) (validator.Feedback, bool) {
	el, ok := d.elements[id]
	if !ok || el.Kind != KindFeedback {
		return nil, false
	}
	return el, true
}

// OnInput registers a listener fired after the input's value changes.
func (d *Document) OnInput(id string, handler func()) {
	if handler == nil {
		return
	}
	d.inputListeners[id] = append(d.inputListeners[id], handler)
}

// OnSubmit registers a submit listener.
func (d *Document) OnSubmit(handler func(validator.Event)) {
	if handler == nil {
		return
	}
	d.submitListeners = append(d.submitListeners, handler)
}

// Type replaces the input's value and fires its input listeners, the way a
// keystroke does in a browser.
func (d *Document) Type(id, value string) error {
	el, ok := d.elements[id]
	if !ok || el.Kind != KindInput {
		return fmt.Errorf("dom: input %q not found", id)
	}
	el.SetValue(value)
	for _, handler := range d.inputListeners[id] {
		handler()
	}
	return nil
}

// Submit dispatches a submit event and returns it so callers can inspect
// whether the default action was prevented.
func (d *Document) Submit() *Event {
	ev := &Event{}
	for _, handler := range d.submitListeners {
		handler(ev)
	}
	return ev
}

// Reset restores every input to its default value without firing input
// listeners.
func (d *Document) Reset() {
	for _, id := range d.order {
		el := d.elements[id]
		if el.Kind == KindInput {
			el.SetValue(el.defaultValue)
		}
	}
}

// Values returns the current input values keyed by id.
func (d *Document) Values() map[string]string {
	out := make(map[string]string)
	for _, id := range d.order {
		el := d.elements[id]
		if el.Kind == KindInput {
			out[id] = el.value
		}
	}
	return out
}
