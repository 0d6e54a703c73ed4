package widgets

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/validate"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeString(t *testing.T, f *Field, s string) {
	t.Helper()
	f.Focus()
	for _, r := range s {
		f.Update(keyPress(r))
	}
}

func TestField_ValidateConverts(t *testing.T) {
	f := IntField("age", "Age")
	typeString(t, f, "42")

	v, err := f.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if v.(int) != 42 {
		t.Errorf("got %v, want 42", v)
	}
	if f.Err() != "" {
		t.Errorf("unexpected error message %q", f.Err())
	}
}

func TestField_ValidateInvalid(t *testing.T) {
	f := IntField("age", "Age")
	typeString(t, f, "nope")

	if _, err := f.Validate(); err == nil {
		t.Fatal("expected validation failure")
	}
	if f.Err() != "must be of type int" {
		t.Errorf("got message %q", f.Err())
	}
	if !strings.Contains(f.View(), "must be of type int") {
		t.Error("expected the message in the rendered view")
	}
}

func TestField_LiveMarker(t *testing.T) {
	f := IntField("age", "Age")
	typeString(t, f, "7")
	if !strings.Contains(f.View(), "✓") {
		t.Error("expected valid marker after numeric input")
	}

	typeString(t, f, "x")
	if !strings.Contains(f.View(), "✗") {
		t.Error("expected invalid marker after non-numeric input")
	}
}

func TestField_NoValidatorPassesRawValue(t *testing.T) {
	f := NewField("note", "Note")
	f.SetValue("anything at all")

	v, err := f.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if v.(string) != "anything at all" {
		t.Errorf("got %v", v)
	}
}

func TestField_ConditionValidatorFallsBackToRawValue(t *testing.T) {
	f := NewField("word", "Word", WithValidator(validate.Condition(func(v any) bool {
		s, _ := v.(string)
		return len(s) >= 3
	})))

	f.SetValue("abc")
	v, err := f.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if v.(string) != "abc" {
		t.Errorf("got %v", v)
	}

	f.SetValue("ab")
	if _, err := f.Validate(); err == nil {
		t.Error("expected failure for short input")
	}
}

func TestPasswordField_Masked(t *testing.T) {
	f := PasswordField("password", "Password")
	if f.Model.EchoMode != textinput.EchoPassword {
		t.Error("expected password echo mode")
	}
}

func TestField_DefaultContent(t *testing.T) {
	f := TextField("city", "City", WithDefault("Berlin"))
	if f.Value() != "Berlin" {
		t.Errorf("got %q", f.Value())
	}
}
