package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/surge-downloader/dlhist/internal/tui/colors"
)

// Default colors for convenience (re-exported from colors package)
var (
	DefaultBorderColor = colors.Gray
	AccentBorder       = colors.Accent
)

// RenderBox draws a rounded box with titles set into the top border:
//
//	╭─ Created per second ──────────── 30s ─╮
//
// Content lines are padded or cut to the inner width; missing lines are
// blank.
func RenderBox(leftTitle, rightTitle, content string, width, height int, borderColor lipgloss.Color) string {
	inner := max(width-2, 1)
	border := lipgloss.NewStyle().Foreground(borderColor)

	top := topBorder(leftTitle, rightTitle, inner, border)
	bottom := border.Render("╰" + strings.Repeat("─", inner) + "╯")
	side := border.Render("│")

	lines := strings.Split(content, "\n")
	rows := make([]string, 0, max(height-2, 0))
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w > inner {
			line = truncate.String(line, uint(inner))
		} else {
			line += strings.Repeat(" ", inner-w)
		}
		rows = append(rows, side+line+side)
	}

	parts := append([]string{top}, rows...)
	return strings.Join(append(parts, bottom), "\n")
}

func topBorder(left, right string, inner int, border lipgloss.Style) string {
	if left != "" {
		left = " " + left + " "
	}
	if right != "" {
		right = " " + right + " "
	}
	// one dash always leads and trails the titles
	fill := inner - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if fill < 0 {
		left = truncate.String(left, uint(max(inner-2, 0)))
		right = ""
		fill = max(inner-lipgloss.Width(left)-2, 0)
	}
	return border.Render("╭─") + left + border.Render(strings.Repeat("─", fill)) + right + border.Render("─╮")
}
