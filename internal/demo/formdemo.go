package demo

import (
	"fmt"
	"regexp"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teakit/teakit/form"
	"github.com/teakit/teakit/theme"
	"github.com/teakit/teakit/validate"
	"github.com/teakit/teakit/widgets"
)

// FormScreen shows a signup form built from validated elements.
type FormScreen struct {
	form   *form.Form
	status string
}

var _ Screen = (*FormScreen)(nil)

// NewFormScreen creates the form demo.
func NewFormScreen() *FormScreen {
	elements := []form.Element{
		widgets.TextField("name", "Name", widgets.WithPlaceholder("Ada Lovelace")),
		widgets.NewField("age", "Age", widgets.WithValidator(
			validate.MustChain(validate.All, validate.Int(), validate.IntRange(13, 120)),
		)),
		widgets.NewField("email", "Email", widgets.WithValidator(
			validate.Match(regexp.MustCompile(`^[^@\s]+@[^@\s]+$`), "must be an email address"),
		)),
		widgets.NewChoice("plan", "Plan",
			widgets.ChoiceItem{Code: "free", Label: "Free"},
			widgets.ChoiceItem{Code: "pro", Label: "Pro"},
		),
		widgets.NewArea("bio", "Bio", widgets.WithAreaPlaceholder("optional"), widgets.WithAreaSize(40, 3)),
	}

	s := &FormScreen{}
	s.form = form.New(elements,
		form.WithErrorBanner(),
		form.OnSubmit(func(data map[string]any) tea.Cmd {
			s.status = fmt.Sprintf("signed up %v (%v, plan %v)",
				data["name"], data["age"], data["plan"])
			return nil
		}),
	)
	return s
}

func (s *FormScreen) Init() tea.Cmd { return s.form.Init() }

func (s *FormScreen) Title() string { return "Forms" }

func (s *FormScreen) KeyHints() []KeyHint {
	return []KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Advance / submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FormScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	return s, s.form.Update(msg)
}

func (s *FormScreen) View(width, height int) string {
	body := s.form.View()
	if s.status != "" {
		body += "\n\n" + theme.Valid.Render(s.status)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
