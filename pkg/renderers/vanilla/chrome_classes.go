package vanilla

// ChromeClass is a typed identifier for the structural CSS classes the
// templates emit.
type ChromeClass string

const (
	ClassForm    ChromeClass = "formguard-form"
	ClassHeader  ChromeClass = "formguard-header"
	ClassField   ChromeClass = "formguard-field"
	ClassHint    ChromeClass = "formguard-hint"
	ClassError   ChromeClass = "formguard-error"
	ClassErrors  ChromeClass = "formguard-errors"
	ClassStatus  ChromeClass = "formguard-status"
	ClassActions ChromeClass = "formguard-actions"
)

// InvalidClass marks a control whose value failed validation, matching the
// class the in-memory document toggles.
const InvalidClass = "invalid"

func chromeClasses() map[string]string {
	return map[string]string{
		"form":    string(ClassForm),
		"header":  string(ClassHeader),
		"field":   string(ClassField),
		"hint":    string(ClassHint),
		"error":   string(ClassError),
		"errors":  string(ClassErrors),
		"status":  string(ClassStatus),
		"actions": string(ClassActions),
		"invalid": InvalidClass,
	}
}
