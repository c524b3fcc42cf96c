package sim

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surge-downloader/dlhist/internal/events"
)

func newTestSim(t *testing.T, cfg Config) *Simulation {
	t.Helper()
	return New(cfg, WithViewportSize(1200, 800))
}

func TestNew_Seeds(t *testing.T) {
	cfg := testConfig()
	s := newTestSim(t, cfg)

	assert.Equal(t, cfg.SeedCount, s.Len())
	assert.Equal(t, cfg.SeedCount, s.Created())
	assert.NotEmpty(t, s.Session())

	newest, _ := s.Item(0)
	oldest, _ := s.Item(s.Len() - 1)
	assert.Equal(t, cfg.SeedCount-1, newest.ID)
	assert.Equal(t, 0, oldest.ID)

	v := s.Viewport()
	assert.True(t, v.AutoScroll)
	assert.Zero(t, v.Offset)
}

func TestReset_MidSimulation(t *testing.T) {
	cfg := testConfig()
	s := newTestSim(t, cfg)

	for i := 0; i < 200; i++ {
		s.Advance(0.05)
	}
	s.HandleInput(events.WheelMsg{Delta: 400})
	require.Greater(t, s.Len(), cfg.SeedCount)
	require.False(t, s.Viewport().AutoScroll)
	session := s.Session()

	s.HandleInput(events.KeyMsg{Action: events.ActionReset})

	assert.Equal(t, cfg.SeedCount, s.Len())
	oldest, _ := s.Item(s.Len() - 1)
	assert.Equal(t, 0, oldest.ID)
	assert.Zero(t, s.Viewport().Offset)
	assert.True(t, s.Viewport().AutoScroll)
	assert.Zero(t, s.Elapsed())
	assert.NotEqual(t, session, s.Session())

	v := s.Viewport()
	assert.Equal(t, 1200.0, v.Width, "window size survives a reset")
	assert.Equal(t, 800.0, v.Height)
}

func TestWheel_DisablesAutoScroll(t *testing.T) {
	s := newTestSim(t, testConfig())
	require.True(t, s.Viewport().AutoScroll)
	before := s.Viewport().Offset

	s.HandleInput(events.WheelMsg{Delta: 50})

	assert.False(t, s.Viewport().AutoScroll)
	assert.Equal(t, before+50, s.Viewport().Offset)
}

func TestToggleAutoScroll(t *testing.T) {
	s := newTestSim(t, testConfig())
	s.HandleInput(events.KeyMsg{Action: events.ActionToggleAutoScroll})
	assert.False(t, s.Viewport().AutoScroll)

	at := s.Viewport().Offset
	s.Advance(0.05)
	assert.Equal(t, at, s.Viewport().Offset, "offset holds while auto-scroll is off")

	s.HandleInput(events.KeyMsg{Action: events.ActionToggleAutoScroll})
	s.Advance(0.05)
	assert.Greater(t, s.Viewport().Offset, at)
}

func TestHandleInput_DragStateVisibleInSnapshot(t *testing.T) {
	s := newTestSim(t, testConfig())
	require.False(t, s.Viewport().Dragging())

	s.HandleInput(events.DragMsg{Phase: events.DragStart, Y: 500})
	require.True(t, s.Viewport().Dragging())

	s.HandleInput(events.DragMsg{Phase: events.DragMove, Y: 400})
	assert.Equal(t, 100.0, s.Viewport().Offset)
	assert.False(t, s.Viewport().AutoScroll)

	s.HandleInput(events.DragMsg{Phase: events.DragEnd})
	assert.False(t, s.Viewport().Dragging())
}

func TestCapIsNeverExceeded(t *testing.T) {
	cfg := CompactConfig()
	cfg.Seed = 9
	cfg.TotalCap = 300
	s := newTestSim(t, cfg)

	for i := 0; i < 2000; i++ {
		s.Advance(0.05)
		require.LessOrEqual(t, s.Created(), cfg.TotalCap)
		require.LessOrEqual(t, s.Len(), cfg.TotalCap)
	}
	assert.Equal(t, cfg.TotalCap, s.Created())

	// capped: nothing more is created no matter how long it runs
	s.Advance(0.05)
	assert.Equal(t, cfg.TotalCap, s.Len())
}

func TestTick_ClampsDelta(t *testing.T) {
	cfg := testConfig()
	s := newTestSim(t, cfg)

	s.Tick(3 * time.Second)
	assert.Equal(t, cfg.SeedCount+1, s.Created(), "the anchoring tick still creates one item")
	assert.Zero(t, s.Elapsed())

	offset := s.Viewport().Offset
	created := s.Created()
	f := s.Tick(13 * time.Second) // ten second stall

	assert.Equal(t, 10.0, f.Elapsed)
	assert.LessOrEqual(t, s.Created()-created, int(cfg.FastRate*cfg.MaxDelta))
	assert.LessOrEqual(t, s.Viewport().Offset-offset, cfg.ScrollFast*cfg.MaxDelta+1e-9)
}

func TestAdvance_ClampsDelta(t *testing.T) {
	s := newTestSim(t, testConfig())

	s.Advance(5)
	assert.Equal(t, 0.05, s.Elapsed())

	s.Advance(-1)
	assert.Equal(t, 0.05, s.Elapsed())
}

func TestOffsetStaysInBounds(t *testing.T) {
	cfg := testConfig()
	s := newTestSim(t, cfg)
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 3000; i++ {
		switch r.IntN(7) {
		case 0:
			s.HandleInput(events.WheelMsg{Delta: (r.Float64() - 0.5) * 4000})
		case 1:
			s.HandleInput(events.DragMsg{Phase: events.DragStart, Y: r.Float64() * 800})
		case 2:
			s.HandleInput(events.DragMsg{Phase: events.DragMove, Y: r.Float64()*3000 - 1000})
		case 3:
			s.HandleInput(events.DragMsg{Phase: events.DragEnd})
		case 4:
			s.HandleInput(events.ResizeMsg{Width: r.Float64() * 2000, Height: r.Float64() * 1400})
		case 5:
			s.HandleInput(events.KeyMsg{Action: events.ActionToggleAutoScroll})
		default:
			s.Advance(r.Float64() * 0.2)
		}

		off := s.Viewport().Offset
		require.GreaterOrEqual(t, off, 0.0)
		require.LessOrEqual(t, off, s.MaxScroll())
	}
}

func TestFrame(t *testing.T) {
	cfg := testConfig()
	s := newTestSim(t, cfg)
	f := s.Advance(0.05)

	g := cfg.Geometry
	assert.Equal(t, s.Len(), f.Total)
	assert.Equal(t, float64(s.Len())*g.RowHeight+g.ChromeHeight(), f.ContentHeight)
	assert.Equal(t, 800-g.ListTop()-g.ListBottom, f.ListHeight)
	assert.Equal(t, f.Stats.Downloading+f.Stats.Complete+f.Stats.Failed, f.Total)

	first, last, ok := VisibleRange(f.Offset, g.RowHeight, f.ListHeight, f.Total)
	require.True(t, ok)
	assert.Equal(t, first, f.First)
	require.Len(t, f.Items, last-first+1)

	// the frame owns its items
	want, _ := s.Item(f.First)
	f.Items[0].Name = "changed"
	got, _ := s.Item(f.First)
	assert.Equal(t, want.Name, got.Name)
}

func TestFrame_TinyWindow(t *testing.T) {
	s := New(testConfig(), WithViewportSize(320, 100))
	f := s.Advance(0.05)

	assert.Zero(t, f.ListHeight)
	assert.Empty(t, f.Items)
}

func TestWithSource_Deterministic(t *testing.T) {
	cfg := testConfig()
	a := New(cfg, WithSource(NewSource(11)), WithViewportSize(1200, 800))
	b := New(cfg, WithSource(NewSource(11)), WithViewportSize(1200, 800))

	for i := 0; i < 100; i++ {
		fa, fb := a.Advance(0.033), b.Advance(0.033)
		require.Equal(t, fa.Items, fb.Items)
		require.Equal(t, fa.Stats, fb.Stats)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.TotalCap = cfg.SeedCount + 5

	s := New(cfg, WithLogger(log.New(&buf)))
	for i := 0; i < 10; i++ {
		s.Advance(0.05)
	}

	out := buf.String()
	assert.Contains(t, out, "simulation reset")
	assert.Contains(t, out, "creation cap reached")
	assert.Contains(t, out, s.Session())
}
