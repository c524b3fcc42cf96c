package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/surge-downloader/dlhist/internal/tui/colors"
)

// partial fills, an eighth of a cell each
var blocks = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// RenderBarGraph draws data as vertical bars scaled so maxVal fills the
// height, stretched across the full width. The bottom row is a baseline;
// bars are shaded bottom to top with the graph gradient.
func RenderBarGraph(data []float64, width, height int, maxVal float64) string {
	if width < 1 || height < 1 {
		return ""
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	grid := lipgloss.NewStyle().Foreground(colors.Gray)
	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
		for x := range cells[y] {
			switch {
			case y == height-1:
				cells[y][x] = grid.Render("─")
			case y%2 == 0:
				cells[y][x] = grid.Render("╌")
			default:
				cells[y][x] = " "
			}
		}
	}

	shades := make([]lipgloss.Style, height)
	for level := range shades {
		idx := min(level*len(colors.GraphGradient)/height, len(colors.GraphGradient)-1)
		shades[level] = lipgloss.NewStyle().Foreground(colors.GraphGradient[idx])
	}

	perPoint := float64(width) / float64(max(len(data), 1))
	for i, v := range data {
		eighths := int(min(max(v, 0)/maxVal, 1) * float64(height) * 8)
		from, to := int(float64(i)*perPoint), min(int(float64(i+1)*perPoint), width)
		for level := 0; level < height && eighths > level*8; level++ {
			n := min(eighths-level*8, 8)
			for x := from; x < to; x++ {
				cells[height-1-level][x] = shades[level].Render(blocks[n])
			}
		}
	}

	rows := make([]string, height)
	for y, row := range cells {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}
