package validator

// Input is a user-editable control addressed by a stable identifier.
type Input interface {
	Value() string
	SetValue(value string)
	// SetInvalid toggles the visual invalid indicator.
	SetInvalid(invalid bool)
}

// Tone distinguishes error feedback from success feedback.
type Tone string

const (
	ToneError   Tone = "error"
	ToneSuccess Tone = "success"
)

// Feedback is an element that shows or hides a message, either next to a
// field or as the form-level summary.
type Feedback interface {
	Show(text string, tone Tone)
	Hide()
}

// Surface resolves element handles. Fields and their feedback elements must
// already exist; the validator never creates them.
type Surface interface {
	Input(id string) (Input, bool)
	Feedback(id string) (Feedback, bool)
}

// Resetter is implemented by surfaces that can restore every control to its
// initial value. Surfaces without it get their registered inputs cleared.
type Resetter interface {
	Reset()
}

// Event is a submit event whose default action can be suppressed.
type Event interface {
	PreventDefault()
}

// EventSource delivers input and submit events from the host UI loop.
type EventSource interface {
	OnInput(id string, handler func())
	OnSubmit(handler func(Event))
}
