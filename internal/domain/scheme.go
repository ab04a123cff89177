package domain

import "fmt"

// FieldScheme maps each role to the JSON key clients use for it.
type FieldScheme map[Field]string

// CanonicalScheme is the naming emitted by the bundled form and CLI.
var CanonicalScheme = FieldScheme{
	FieldAge:       "age",
	FieldSituation: "issue",
	FieldLens:      "lens",
	FieldStyle:     "style",
	FieldCount:     "numPrompts",
}

// Key returns the wire key for field, falling back to the canonical key.
func (s FieldScheme) Key(field Field) string {
	if k, ok := s[field]; ok && k != "" {
		return k
	}
	return CanonicalScheme[field]
}

// Check reports an error when two roles share a key.
func (s FieldScheme) Check() error {
	seen := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		key := s.Key(f)
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q used for %s and %s", ErrInvalidFieldName, key, other, f)
		}
		seen[key] = f
	}
	return nil
}

// ParseField resolves a role name or a canonical wire key to its Field.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if name == string(f) || name == CanonicalScheme[f] {
			return f, true
		}
	}
	return "", false
}
