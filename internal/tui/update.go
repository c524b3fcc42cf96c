package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/surge-downloader/dlhist/internal/events"
	"github.com/surge-downloader/dlhist/internal/utils"
)

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = m.sim.Tick(m.clock.Since(msg.at))
		m.sessions.frame(m.frame)
		m.thumb.step()
		return m, m.clock.Cmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.sessions.end(m.sim)
			return m, tea.Quit
		case key.Matches(msg, m.keys.AutoScroll):
			m.input(events.KeyMsg{Action: events.ActionToggleAutoScroll})
		case key.Matches(msg, m.keys.Reset):
			m.sessions.end(m.sim)
			m.thumb.reset()
			m.input(events.KeyMsg{Action: events.ActionReset})
			m.sessions.start(m.sim.Session())
			utils.Debug("reset from keyboard, session %s", m.sim.Session())
		case key.Matches(msg, m.keys.Up):
			m.input(events.WheelMsg{Delta: -WheelStep})
		case key.Matches(msg, m.keys.Down):
			m.input(events.WheelMsg{Delta: WheelStep})
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
		}

	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

// input applies an event and refreshes the frame so the next View sees it
func (m *RootModel) input(e events.Event) {
	m.sim.HandleInput(e)
	m.frame = m.sim.Frame()
}

func (m *RootModel) mouse(msg tea.MouseMsg) {
	// pointer at the middle of its cell, in page pixels
	y := (float64(msg.Y) + 0.5) * CellHeight

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.input(events.WheelMsg{Delta: -WheelStep})
	case msg.Button == tea.MouseButtonWheelDown:
		m.input(events.WheelMsg{Delta: WheelStep})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.input(events.DragMsg{Phase: events.DragStart, Y: y})
	case msg.Action == tea.MouseActionMotion && m.sim.Viewport().Dragging():
		m.input(events.DragMsg{Phase: events.DragMove, Y: y})
	case msg.Action == tea.MouseActionRelease:
		m.input(events.DragMsg{Phase: events.DragEnd})
	}
}

// layout gives the canvas every row the footer does not use
func (m *RootModel) layout() {
	m.help.Width = m.width
	rows := max(0, m.height-m.footerHeight())
	m.canvas.Resize(m.width, rows)
	w, h := m.canvas.Size()
	m.input(events.ResizeMsg{Width: w, Height: h})
}

func (m RootModel) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}
