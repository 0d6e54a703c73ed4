package form

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/widgets"
)

func formResult(t *testing.T, cmd tea.Cmd) ResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("got %T, want ResultMsg", cmd())
	}
	return msg
}

func TestFormDialog_EscapeDismisses(t *testing.T) {
	d := NewDialog("Sign in", Login(nil))
	msg := formResult(t, d.Update(tea.KeyPressMsg{Code: tea.KeyEscape}))
	if msg.Submitted {
		t.Error("esc must not submit")
	}
	if msg.ID != d.ID() {
		t.Error("result carries wrong dialog ID")
	}
}

func TestFormDialog_SubmitCarriesData(t *testing.T) {
	f := Login(nil)
	d := NewDialog("Sign in", f)
	f.elements[0].(*widgets.Field).SetValue("ada")
	f.elements[1].(*widgets.Field).SetValue("s3cret")

	msg := formResult(t, f.Submit())
	if !msg.Submitted {
		t.Fatal("expected submitted result")
	}
	if msg.Data["username"].(string) != "ada" {
		t.Errorf("data = %v", msg.Data)
	}
	if msg.ID != d.ID() {
		t.Error("result carries wrong dialog ID")
	}
}

func TestFormDialog_ViewCentersForm(t *testing.T) {
	d := NewDialog("Sign in", Login(nil))
	view := d.View(80, 24)
	if !strings.Contains(view, "Sign in") || !strings.Contains(view, "Username") {
		t.Error("dialog content missing from view")
	}
}
