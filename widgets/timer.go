package widgets

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/timer"
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/theme"
)

// Countdown wraps the bubbles timer with a remaining-time bar. The
// underlying timer's TimeoutMsg passes through to the caller
// unchanged, so programs can react to expiry in their own Update.
type Countdown struct {
	Model timer.Model

	label string
	total time.Duration
	width int
}

// NewCountdown creates a countdown over the given duration.
func NewCountdown(label string, d time.Duration) *Countdown {
	return &Countdown{
		Model: timer.New(d),
		label: label,
		total: d,
		width: 40,
	}
}

// SetWidth adjusts the rendered bar width.
func (c *Countdown) SetWidth(w int) { c.width = w }

// Start begins (or resumes) the countdown.
func (c *Countdown) Start() tea.Cmd { return c.Model.Start() }

// Stop pauses the countdown.
func (c *Countdown) Stop() tea.Cmd { return c.Model.Stop() }

// Toggle flips between running and paused.
func (c *Countdown) Toggle() tea.Cmd { return c.Model.Toggle() }

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool { return c.Model.Running() }

// Done reports whether the countdown has expired.
func (c *Countdown) Done() bool { return c.Model.Timedout() }

// Remaining returns the time left.
func (c *Countdown) Remaining() time.Duration { return c.Model.Timeout }

// Update forwards tick messages to the underlying timer.
func (c *Countdown) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return cmd
}

// View renders the label, the remaining time and the bar.
func (c *Countdown) View() string {
	var result string
	if c.label != "" {
		result = theme.Label.Render(c.label) + "  "
	}

	remaining := c.Model.Timeout
	if remaining < 0 {
		remaining = 0
	}
	clock := fmt.Sprintf("%02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
	if c.Done() {
		result += theme.Invalid.Render(clock + "  time's up")
		return result
	}
	result += theme.Body.Render(clock) + "  "

	barWidth := c.width - len(clock) - 4
	if c.label != "" {
		barWidth -= len(c.label) + 2
	}
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if c.total > 0 {
		frac = float64(remaining) / float64(c.total)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.TimerBarFilled.Render(strings.Repeat(" ", filled))
	result += theme.TimerBarEmpty.Render(strings.Repeat(" ", barWidth-filled))
	return result
}
