package demo

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teakit/teakit/form"
	"github.com/teakit/teakit/theme"
	"github.com/teakit/teakit/widgets"
)

// DialogScreen opens modal dialogs over a background menu.
type DialogScreen struct {
	menu   Menu
	modal  *widgets.Dialog
	login  *form.Dialog
	status string
}

var _ Screen = (*DialogScreen)(nil)

// NewDialogScreen creates the dialog demo.
func NewDialogScreen() *DialogScreen {
	s := &DialogScreen{}
	s.menu = NewMenu([]MenuItem{
		{Label: "CONFIRM DIALOG", Action: func() tea.Cmd {
			s.modal = widgets.NewConfirm("Delete everything?", "This cannot be undone.")
			return nil
		}},
		{Label: "MESSAGE DIALOG", Action: func() tea.Cmd {
			s.modal = widgets.NewMessage("Saved", "Your changes were written to disk.")
			return nil
		}},
		{Label: "LOGIN FORM DIALOG", Action: func() tea.Cmd {
			s.login = form.NewDialog("Sign in", form.Login(nil))
			return s.login.Init()
		}},
	})
	return s
}

func (s *DialogScreen) Init() tea.Cmd { return nil }

func (s *DialogScreen) Title() string { return "Dialogs" }

// HandlesEsc claims esc while a modal is open so the app does not
// navigate back instead of closing it.
func (s *DialogScreen) HandlesEsc() bool { return s.modal != nil || s.login != nil }

func (s *DialogScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case widgets.DialogResultMsg:
		if msg.Accepted {
			s.status = "confirmed"
		} else {
			s.status = "dismissed"
		}
		s.modal = nil
		return s, nil

	case form.ResultMsg:
		if msg.Submitted {
			s.status = fmt.Sprintf("logged in as %v", msg.Data["username"])
		} else {
			s.status = "login cancelled"
		}
		s.login = nil
		return s, nil
	}

	if s.modal != nil {
		return s, s.modal.Update(msg)
	}
	if s.login != nil {
		return s, s.login.Update(msg)
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DialogScreen) View(width, height int) string {
	if s.modal != nil {
		return s.modal.View(width, height)
	}
	if s.login != nil {
		return s.login.View(width, height)
	}

	body := s.menu.View()
	if s.status != "" {
		body += "\n" + theme.Hint.Render(s.status)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
