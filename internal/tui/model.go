package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/surge-downloader/dlhist/internal/render"
	"github.com/surge-downloader/dlhist/internal/sim"
)

// RootModel hosts a simulation in the terminal. The bubbletea update loop
// is the simulation's only owner.
type RootModel struct {
	sim      *sim.Simulation
	renderer *render.Renderer
	canvas   *Canvas
	clock    *FrameClock
	thumb    *thumbSpring
	sessions *sessionTracker

	keys keyMap
	help help.Model

	frame  sim.Frame
	width  int
	height int
}

func NewRootModel(s *sim.Simulation, palette render.Palette, opts ...ModelOption) RootModel {
	thumb := newThumbSpring(int(time.Second / FrameInterval))
	m := RootModel{
		sim:      s,
		renderer: render.New(s.Config().Geometry, palette, render.WithThumbEasing(thumb.ease)),
		canvas:   NewCanvas(0, 0),
		clock:    NewFrameClock(FrameInterval),
		thumb:    thumb,
		sessions: &sessionTracker{},
		keys:     defaultKeyMap(),
		help:     help.New(),
		frame:    s.Frame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.sessions.start(s.Session())
	return m
}

func (m RootModel) Init() tea.Cmd {
	return m.clock.Cmd()
}
