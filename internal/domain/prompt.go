package domain

import "strings"

// Field names a PromptRequest role independently of the wire key used for it.
type Field string

const (
	FieldAge       Field = "age"
	FieldSituation Field = "situation"
	FieldLens      Field = "lens"
	FieldStyle     Field = "style"
	FieldCount     Field = "count"
)

// Fields lists every role in display order.
var Fields = []Field{FieldAge, FieldSituation, FieldLens, FieldStyle, FieldCount}

// PromptRequest holds the preferences a journal prompt is tailored to.
type PromptRequest struct {
	Age       string `json:"age"`
	Situation string `json:"issue"`
	Lens      string `json:"lens"`
	Style     string `json:"style"`
	Count     string `json:"numPrompts"`
}

// Get returns the value stored for field.
func (p PromptRequest) Get(field Field) string {
	switch field {
	case FieldAge:
		return p.Age
	case FieldSituation:
		return p.Situation
	case FieldLens:
		return p.Lens
	case FieldStyle:
		return p.Style
	case FieldCount:
		return p.Count
	}
	return ""
}

// Set overwrites the value stored for field. It reports false for unknown fields.
func (p *PromptRequest) Set(field Field, value string) bool {
	switch field {
	case FieldAge:
		p.Age = value
	case FieldSituation:
		p.Situation = value
	case FieldLens:
		p.Lens = value
	case FieldStyle:
		p.Style = value
	case FieldCount:
		p.Count = value
	default:
		return false
	}
	return true
}

// Option is a selectable value together with its display label.
type Option struct {
	Value string
	Label string
}

var (
	AgeOptions = []Option{
		{Value: "15-25", Label: "15-25"},
		{Value: "26-35", Label: "26-35"},
		{Value: "36-45", Label: "36-45"},
		{Value: "46-55", Label: "46-55"},
		{Value: "over 55", Label: "Over 55"},
	}
	SituationOptions = []Option{
		{Value: "Being More Present", Label: "Being More Present"},
		{Value: "recent health diagnosis", Label: "Recent Health Diagnosis"},
		{Value: "new job", Label: "New Job"},
	}
	LensOptions = []Option{
		{Value: "christian", Label: "Christian"},
		{Value: "stoic", Label: "Stoic"},
		{Value: "buddhism", Label: "Buddhism"},
		{Value: "rastafarianism", Label: "Rastafarianism"},
	}
	StyleOptions = []Option{
		{Value: "reflective", Label: "Reflective"},
		{Value: "practical", Label: "Practical"},
		{Value: "gentle", Label: "Gentle"},
		{Value: "challenging", Label: "Challenging"},
		{Value: "poetic", Label: "Poetic"},
	}
	CountOptions = []Option{
		{Value: "1", Label: "1"},
		{Value: "3-5", Label: "3-5"},
		{Value: "10", Label: "10"},
		{Value: "15", Label: "15"},
	}
)

// RequiredFields selects which roles must be filled for a request to be valid.
type RequiredFields []Field

var (
	// AllFieldsRequired is the contract of the generation endpoint.
	AllFieldsRequired = RequiredFields{FieldAge, FieldSituation, FieldLens, FieldStyle, FieldCount}
	// StyleOptional is the contract of the copy-paste form, where tone is a nicety.
	StyleOptional = RequiredFields{FieldAge, FieldSituation, FieldLens, FieldCount}
)

// ValidationResult reports whether a request is complete and, if not, which
// roles are missing.
type ValidationResult struct {
	OK      bool    `json:"ok"`
	Missing []Field `json:"missing,omitempty"`
}

// MissingNames returns the missing roles as strings.
func (v ValidationResult) MissingNames() []string {
	names := make([]string, 0, len(v.Missing))
	for _, f := range v.Missing {
		names = append(names, string(f))
	}
	return names
}

// Validate checks that every required role holds a non-blank value.
func Validate(req PromptRequest, required RequiredFields) ValidationResult {
	var missing []Field
	for _, field := range required {
		if strings.TrimSpace(req.Get(field)) == "" {
			missing = append(missing, field)
		}
	}
	return ValidationResult{OK: len(missing) == 0, Missing: missing}
}
