package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/surge-downloader/dlhist/internal/tui/colors"
	"github.com/surge-downloader/dlhist/internal/tui/components"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(colors.LightGray)
	onStyle    = lipgloss.NewStyle().Foreground(colors.Accent).Bold(true)
	offStyle   = lipgloss.NewStyle().Foreground(colors.Warning)
	capStyle   = lipgloss.NewStyle().Foreground(colors.StateDone)
	footerBase = lipgloss.NewStyle().Padding(0, 1)
)

func (m RootModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.renderer.Draw(m.canvas, m.frame)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.canvas.View(),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

// statusLine summarizes the whole store, not just the visible rows
func (m RootModel) statusLine() string {
	f := m.frame
	cfg := m.sim.Config()

	auto := offStyle.Render("auto-scroll off")
	if f.AutoScroll {
		auto = onStyle.Render("auto-scroll on")
	}

	created := dimStyle.Render(fmt.Sprintf("created %s/%s", humanize.Comma(int64(f.Created)), humanize.Comma(int64(cfg.TotalCap))))
	if f.Created >= cfg.TotalCap {
		created = capStyle.Render("cap reached")
	}

	line := components.RenderStats(f.Stats) + "   " + created + "   " + auto + "   " +
		dimStyle.Render(fmt.Sprintf("%.1fs", f.Elapsed))
	return footerBase.MaxWidth(m.width).Render(line)
}
