package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	full := PromptRequest{Age: "26-35", Situation: "new job", Lens: "stoic", Style: "reflective", Count: "3-5"}
	cases := []struct {
		name     string
		req      PromptRequest
		required RequiredFields
		ok       bool
		missing  []Field
	}{
		{name: "complete", req: full, required: AllFieldsRequired, ok: true},
		{name: "blank_style_required", req: PromptRequest{Age: "26-35", Situation: "new job", Lens: "stoic", Style: "  ", Count: "1"}, required: AllFieldsRequired, missing: []Field{FieldStyle}},
		{name: "blank_style_optional", req: PromptRequest{Age: "26-35", Situation: "new job", Lens: "stoic", Count: "1"}, required: StyleOptional, ok: true},
		{name: "empty", req: PromptRequest{}, required: AllFieldsRequired, missing: []Field{FieldAge, FieldSituation, FieldLens, FieldStyle, FieldCount}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.req, tc.required)
			if got.OK != tc.ok {
				t.Fatalf("OK = %v, want %v", got.OK, tc.ok)
			}
			if !reflect.DeepEqual(got.Missing, tc.missing) {
				t.Fatalf("Missing = %v, want %v", got.Missing, tc.missing)
			}
		})
	}
}

func TestPromptRequestSetUnknownField(t *testing.T) {
	var req PromptRequest
	if req.Set(Field("mood"), "calm") {
		t.Fatal("Set accepted an unknown field")
	}
	if !req.Set(FieldLens, "stoic") || req.Get(FieldLens) != "stoic" {
		t.Fatalf("Set/Get lens failed: %#v", req)
	}
}

func TestFieldSchemeCheck(t *testing.T) {
	if err := CanonicalScheme.Check(); err != nil {
		t.Fatalf("canonical scheme rejected: %v", err)
	}
	dup := FieldScheme{FieldAge: "lens"}
	if err := dup.Check(); !errors.Is(err, ErrInvalidFieldName) {
		t.Fatalf("Check = %v, want ErrInvalidFieldName", err)
	}
	if got := (FieldScheme{}).Key(FieldCount); got != "numPrompts" {
		t.Fatalf("Key fallback = %q", got)
	}
}
