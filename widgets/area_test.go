package widgets

import (
	"strings"
	"testing"

	"github.com/teakit/teakit/validate"
)

func TestArea_ValidateRunsValidator(t *testing.T) {
	a := NewArea("bio", "Bio", WithAreaValidator(validate.Length(10, 0)))
	a.SetValue("too short")

	if _, err := a.Validate(); err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(a.View(), "at least 10") {
		t.Error("expected the message in the rendered view")
	}

	a.SetValue("long enough now")
	v, err := a.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if v.(string) != "long enough now" {
		t.Errorf("got %v", v)
	}
}

func TestArea_NoValidatorPassesRawValue(t *testing.T) {
	a := NewArea("notes", "Notes")
	a.SetValue("line one\nline two")

	v, err := a.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if v.(string) != "line one\nline two" {
		t.Errorf("got %v", v)
	}
}
