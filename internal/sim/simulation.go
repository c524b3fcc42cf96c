package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/surge-downloader/dlhist/internal/events"
)

// Stats counts items in the store by state
type Stats struct {
	Downloading int
	Complete    int
	Failed      int
}

// Frame is a read-only snapshot handed to a renderer. Items is a copy of
// the visible window; nothing in a Frame aliases the store.
type Frame struct {
	Items []Item
	First int // store index of Items[0]
	Total int // store length

	Offset        float64
	ContentHeight float64
	ListHeight    float64
	RowHeight     float64
	Width         float64
	Height        float64
	AutoScroll    bool

	Elapsed float64
	Created int
	Stats   Stats
}

// Option configures a Simulation
type Option func(*Simulation)

// WithSource replaces the random source
func WithSource(src Source) Option {
	return func(s *Simulation) { s.rng = src }
}

// WithLogger sets the logger used for lifecycle messages
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// WithViewportSize sets the initial window size in pixels
func WithViewportSize(width, height float64) Option {
	return func(s *Simulation) { s.view.Width, s.view.Height = width, height }
}

// Simulation owns the item store, the growth schedule, the progress
// simulator and the viewport. It is driven by one goroutine: the host's
// frame loop.
type Simulation struct {
	cfg Config
	rng Source
	log *log.Logger

	gen      *Generator
	progress *Simulator
	growth   *Growth
	store    *Store
	view     Viewport

	nextID  int
	session string

	started bool
	origin  time.Duration
	last    time.Duration
	elapsed float64

	capLogged bool
}

// New builds a simulation and seeds the initial batch
func New(cfg Config, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:  cfg,
		view: NewViewport(0, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = NewSource(seed)
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	s.gen = NewGenerator(cfg, s.rng)
	s.progress = NewSimulator(cfg, s.rng)
	s.Reset()
	return s
}

// Reset replaces the store, the schedule and the viewport with fresh
// state. The window size survives; ids restart from 0.
func (s *Simulation) Reset() {
	s.store = NewStore(s.cfg.TotalCap)
	s.growth = NewGrowth(s.cfg)
	s.view = NewViewport(s.view.Width, s.view.Height)
	s.nextID = 0
	s.elapsed = 0
	s.origin = s.last
	s.capLogged = false
	s.session = uuid.NewString()

	seeds := s.growth.Reserve(s.cfg.SeedCount)
	for i := 0; i < seeds; i++ {
		s.push(true)
	}
	s.log.Info("simulation reset", "session", s.session, "seeded", seeds, "cap", s.cfg.TotalCap)
}

func (s *Simulation) push(seed bool) {
	it := s.gen.New(s.nextID, seed)
	s.nextID++
	s.store.PushNewest(it)
}

// Tick advances the simulation to the monotonic timestamp now. The first
// tick only anchors the clock. The frame delta is clamped to MaxDelta so a
// long pause does not turn into a burst.
func (s *Simulation) Tick(now time.Duration) Frame {
	if !s.started {
		s.started = true
		s.origin, s.last = now, now
	}
	dt := clamp((now - s.last).Seconds(), 0, s.cfg.MaxDelta)
	s.last = now
	return s.step(dt, (now - s.origin).Seconds())
}

// Advance steps the simulation by an explicit delta in seconds. It is the
// entry point for synthetic harnesses that have no wall clock; a host
// drives a simulation with either Tick or Advance, not both.
func (s *Simulation) Advance(dt float64) Frame {
	dt = clamp(dt, 0, s.cfg.MaxDelta)
	return s.step(dt, s.elapsed+dt)
}

func (s *Simulation) step(dt, elapsed float64) Frame {
	s.elapsed = elapsed

	for n := s.growth.Next(elapsed, dt); n > 0; n-- {
		s.push(false)
	}
	if s.growth.Exhausted() && !s.capLogged {
		s.capLogged = true
		s.log.Info("creation cap reached", "session", s.session, "created", s.growth.Created(), "elapsed", elapsed)
	}

	s.progress.Step(s.store, dt, elapsed)

	s.view.Advance(s.cfg, dt, elapsed)
	s.clampView()
	return s.Frame()
}

// HandleInput applies an input event immediately
func (s *Simulation) HandleInput(e events.Event) {
	switch e := e.(type) {
	case events.WheelMsg:
		s.view.Scroll(e.Delta)
	case events.DragMsg:
		switch e.Phase {
		case events.DragStart:
			s.view.BeginDrag(e.Y)
		case events.DragMove:
			s.view.DragTo(e.Y)
		case events.DragEnd:
			s.view.EndDrag()
		}
	case events.KeyMsg:
		switch e.Action {
		case events.ActionToggleAutoScroll:
			s.view.ToggleAutoScroll()
			s.log.Debug("auto-scroll toggled", "enabled", s.view.AutoScroll)
		case events.ActionReset:
			s.Reset()
		}
	case events.ResizeMsg:
		s.view.Width = max(0, e.Width)
		s.view.Height = max(0, e.Height)
	}
	s.clampView()
}

func (s *Simulation) clampView() {
	s.view.Clamp(s.ContentHeight(), s.cfg.Geometry.ScrollMargin)
}

// ContentHeight is the full logical page height in pixels
func (s *Simulation) ContentHeight() float64 {
	g := s.cfg.Geometry
	return float64(s.store.Len())*g.RowHeight + g.ChromeHeight()
}

// MaxScroll is the current upper bound of the scroll offset
func (s *Simulation) MaxScroll() float64 {
	return MaxScroll(s.ContentHeight(), s.view.Height, s.cfg.Geometry.ScrollMargin)
}

// Frame snapshots the visible window and the counters
func (s *Simulation) Frame() Frame {
	g := s.cfg.Geometry
	listH := g.ListHeight(s.view.Height)

	f := Frame{
		Total:         s.store.Len(),
		Offset:        s.view.Offset,
		ContentHeight: s.ContentHeight(),
		ListHeight:    listH,
		RowHeight:     g.RowHeight,
		Width:         s.view.Width,
		Height:        s.view.Height,
		AutoScroll:    s.view.AutoScroll,
		Elapsed:       s.elapsed,
		Created:       s.growth.Created(),
		Stats:         s.Stats(),
	}
	if first, last, ok := VisibleRange(s.view.Offset, g.RowHeight, listH, s.store.Len()); ok {
		f.First = first
		f.Items = s.store.Slice(first, last)
	}
	return f
}

// Stats counts the whole store by state
func (s *Simulation) Stats() Stats {
	var st Stats
	s.store.Each(func(_ int, it *Item) {
		switch it.State {
		case StateDownloading:
			st.Downloading++
		case StateComplete:
			st.Complete++
		case StateFailed:
			st.Failed++
		}
	})
	return st
}

func (s *Simulation) Config() Config          { return s.cfg }
func (s *Simulation) Viewport() Viewport      { return s.view }
func (s *Simulation) Len() int                { return s.store.Len() }
func (s *Simulation) Created() int            { return s.growth.Created() }
func (s *Simulation) Elapsed() float64        { return s.elapsed }
func (s *Simulation) Session() string         { return s.session }
func (s *Simulation) Item(i int) (Item, bool) { return s.store.At(i) }
