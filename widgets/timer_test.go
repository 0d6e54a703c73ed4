package widgets

import (
	"strings"
	"testing"
	"time"
)

func TestCountdown_ClockFormat(t *testing.T) {
	c := NewCountdown("Session", 90*time.Second)
	if !strings.Contains(c.View(), "01:30") {
		t.Errorf("expected 01:30 in view:\n%s", c.View())
	}
	if c.Done() {
		t.Error("fresh countdown reported done")
	}
}

func TestCountdown_StartReturnsCommand(t *testing.T) {
	c := NewCountdown("", 5*time.Second)
	if cmd := c.Start(); cmd == nil {
		t.Error("expected a tick command from Start")
	}
}

func TestCountdown_Remaining(t *testing.T) {
	c := NewCountdown("", 2*time.Minute)
	if c.Remaining() != 2*time.Minute {
		t.Errorf("got %s", c.Remaining())
	}
}
