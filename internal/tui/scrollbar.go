package tui

import "github.com/charmbracelet/harmonica"

// thumbSpring eases the scrollbar thumb toward the renderer's target so
// it glides instead of jumping a cell at a time.
type thumbSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	seen   bool
}

func newThumbSpring(fps int) *thumbSpring {
	return &thumbSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), ThumbFrequency, ThumbDamping)}
}

// ease records the target and returns the current position. The first
// target snaps.
func (t *thumbSpring) ease(target float64) float64 {
	t.target = target
	if !t.seen {
		t.seen = true
		t.pos, t.vel = target, 0
	}
	return t.pos
}

// step advances the spring by one frame
func (t *thumbSpring) step() {
	if !t.seen {
		return
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
}

// reset forgets the position so the next target snaps
func (t *thumbSpring) reset() {
	t.seen = false
	t.vel = 0
}
