package demo

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teakit/teakit/widgets"
)

// TimerScreen shows the countdown widget.
type TimerScreen struct {
	countdown *widgets.Countdown
	duration  time.Duration
}

var _ Screen = (*TimerScreen)(nil)

// NewTimerScreen creates the countdown demo.
func NewTimerScreen(d time.Duration) *TimerScreen {
	if d <= 0 {
		d = 90 * time.Second
	}
	return &TimerScreen{
		countdown: widgets.NewCountdown("Session", d),
		duration:  d,
	}
}

func (s *TimerScreen) Init() tea.Cmd { return s.countdown.Start() }

func (s *TimerScreen) Title() string { return "Countdown" }

func (s *TimerScreen) KeyHints() []KeyHint {
	return []KeyHint{
		{Key: "Space", Description: "Pause / resume"},
		{Key: "R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TimerScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case " ":
			return s, s.countdown.Toggle()
		case "r":
			s.countdown = widgets.NewCountdown("Session", s.duration)
			return s, s.countdown.Start()
		}
	}
	return s, s.countdown.Update(msg)
}

func (s *TimerScreen) View(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.countdown.View())
}
