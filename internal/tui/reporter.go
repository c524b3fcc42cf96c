package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is one beat of the frame clock
type frameMsg struct {
	at time.Time
}

// FrameClock turns tea.Tick into a monotonic timestamp stream for the
// simulation. Each frame schedules the next one.
type FrameClock struct {
	interval time.Duration
	start    time.Time
}

func NewFrameClock(interval time.Duration) *FrameClock {
	if interval <= 0 {
		interval = FrameInterval
	}
	return &FrameClock{interval: interval, start: time.Now()}
}

// Cmd schedules the next frame
func (c *FrameClock) Cmd() tea.Cmd {
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

// Since converts a tick time into a duration since the clock started
func (c *FrameClock) Since(t time.Time) time.Duration {
	return t.Sub(c.start)
}
