package tui

import (
	"time"

	"github.com/surge-downloader/dlhist/internal/sim"
)

// SessionSummary describes one session: the span from a reset (or start)
// to the next reset or quit
type SessionSummary struct {
	Session  string
	Started  time.Time
	Elapsed  float64 // simulated seconds
	Frames   int
	Created  int
	Stats    sim.Stats
	MaxCards int // most cards on screen in one frame
}

// sessionTracker counts frames for the current session. RootModel is
// copied by value through Update, so the tracker is shared by pointer.
type sessionTracker struct {
	id       string
	started  time.Time
	frames   int
	maxCards int
	ended    bool
	onEnd    func(SessionSummary)
}

func (t *sessionTracker) start(id string) {
	t.id = id
	t.started = time.Now()
	t.frames, t.maxCards = 0, 0
	t.ended = false
}

func (t *sessionTracker) frame(f sim.Frame) {
	t.frames++
	t.maxCards = max(t.maxCards, len(f.Items))
}

// end reports the session once
func (t *sessionTracker) end(s *sim.Simulation) {
	if t.ended {
		return
	}
	t.ended = true
	if t.onEnd == nil {
		return
	}
	t.onEnd(SessionSummary{
		Session:  t.id,
		Started:  t.started,
		Elapsed:  s.Elapsed(),
		Frames:   t.frames,
		Created:  s.Created(),
		Stats:    s.Stats(),
		MaxCards: t.maxCards,
	})
}

// ModelOption configures a RootModel
type ModelOption func(*RootModel)

// WithSessionEnd calls fn when a session ends, on reset and on quit
func WithSessionEnd(fn func(SessionSummary)) ModelOption {
	return func(m *RootModel) { m.sessions.onEnd = fn }
}

// EndSession reports the running session if a quit key has not already.
// Hosts call it after the program exits.
func (m RootModel) EndSession() {
	m.sessions.end(m.sim)
}
