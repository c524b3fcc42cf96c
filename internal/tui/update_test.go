package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surge-downloader/dlhist/internal/render"
	"github.com/surge-downloader/dlhist/internal/sim"
)

func newTestModel(t *testing.T) RootModel {
	t.Helper()
	cfg := sim.CompactConfig()
	cfg.Seed = 3
	m := NewRootModel(sim.New(cfg), render.DefaultPalette())
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(t *testing.T, m RootModel, msg tea.Msg) RootModel {
	t.Helper()
	next, _ := m.Update(msg)
	rm, ok := next.(RootModel)
	require.True(t, ok)
	return rm
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := NewRootModel(sim.New(sim.DefaultConfig()), render.DefaultPalette())
	assert.Equal(t, "Loading...", m.View())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 100, m.canvas.Cols())
	assert.Equal(t, 40-m.footerHeight(), m.canvas.Rows())

	v := m.sim.Viewport()
	assert.Equal(t, float64(100*CellWidth), v.Width)
	assert.Equal(t, float64(m.canvas.Rows()*CellHeight), v.Height)
}

func TestUpdate_SpaceTogglesAutoScroll(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.frame.AutoScroll)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, m.frame.AutoScroll)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.frame.AutoScroll)
}

func TestUpdate_ResetKey(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	for i := 1; i <= 30; i++ {
		m = update(t, m, frameMsg{at: m.clock.start.Add(time.Duration(i) * 50 * time.Millisecond)})
	}
	require.Greater(t, m.sim.Len(), m.sim.Config().SeedCount)

	for _, k := range []string{"r", "R"} {
		m = update(t, m, runeKey(k))
		assert.Equal(t, m.sim.Config().SeedCount, m.sim.Len())
		assert.True(t, m.frame.AutoScroll)
		assert.Zero(t, m.frame.Offset)
	}
}

func TestUpdate_WheelScrolls(t *testing.T) {
	m := newTestModel(t)
	before := m.frame.Offset

	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.False(t, m.frame.AutoScroll)
	assert.Equal(t, before+WheelStep, m.frame.Offset)

	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, before, m.frame.Offset)
}

func TestUpdate_ArrowKeysScroll(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, m.frame.AutoScroll)
	assert.Equal(t, float64(WheelStep), m.frame.Offset)

	m = update(t, m, runeKey("k"))
	assert.Zero(t, m.frame.Offset)
}

func TestUpdate_Drag(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	start := m.frame.Offset

	m = update(t, m, tea.MouseMsg{X: 10, Y: 20, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 15, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	// dragging up five rows scrolls down by five cells of pixels
	assert.Equal(t, start+5*CellHeight, m.frame.Offset)

	m = update(t, m, tea.MouseMsg{X: 10, Y: 17, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	assert.Equal(t, start+3*CellHeight, m.frame.Offset)

	m = update(t, m, tea.MouseMsg{X: 10, Y: 17, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionMotion})
	assert.Equal(t, start+3*CellHeight, m.frame.Offset, "motion after release does nothing")
}

func TestUpdate_FrameAdvancesAndReschedules(t *testing.T) {
	m := newTestModel(t)
	created := m.sim.Created()

	next, cmd := m.Update(frameMsg{at: m.clock.start.Add(time.Second)})
	m = next.(RootModel)
	require.NotNil(t, cmd)
	assert.Greater(t, m.sim.Created(), created)

	next, _ = m.Update(frameMsg{at: m.clock.start.Add(time.Second + 20*time.Millisecond)})
	m = next.(RootModel)
	assert.InDelta(t, 0.02, m.frame.Elapsed, 1e-9)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)
	for _, k := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_HelpResizesCanvas(t *testing.T) {
	m := newTestModel(t)
	short := m.canvas.Rows()

	m = update(t, m, runeKey("?"))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.canvas.Rows(), short)
	assert.Equal(t, 40, m.canvas.Rows()+m.footerHeight())
}

func TestView_DrawsPage(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	plain := m.canvas.Plain()
	assert.Contains(t, plain, "Download History")
	assert.Contains(t, plain, "Today")
	assert.Contains(t, out, "auto-scroll on")
	assert.Contains(t, out, "Downloading")
	assert.Contains(t, out, "created 60/2,000")
}
