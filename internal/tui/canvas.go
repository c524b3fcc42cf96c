package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/surge-downloader/dlhist/internal/render"
)

type cell struct {
	ch rune // 0 is blank, or the right half of a wide rune
	fg colorful.Color
	bg colorful.Color
}

// Canvas rasterizes page drawing onto a grid of terminal cells. Each cell
// covers CellWidth×CellHeight page pixels; a shape covers a cell when it
// covers the cell's centre. Shapes thinner than half a cell are drawn as
// box-drawing glyphs instead.
type Canvas struct {
	cols, rows int
	cells      []cell
	clips      []render.Rect
	styles     map[[2]colorful.Color]lipgloss.Style
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{styles: make(map[[2]colorful.Color]lipgloss.Style)}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the grid; contents are lost
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(0, cols), max(0, rows)
	c.cells = make([]cell, c.cols*c.rows)
	c.clips = c.clips[:0]
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols * CellWidth), float64(c.rows * CellHeight)
}

func toColorful(col color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
}

// blend composites col over under using col's alpha
func blend(under colorful.Color, col color.NRGBA) colorful.Color {
	if col.A == 255 {
		return toColorful(col)
	}
	return under.BlendRgb(toColorful(col), float64(col.A)/255).Clamped()
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	if n := len(c.clips); n > 0 {
		clip := c.clips[n-1]
		x, y := centre(col, row)
		if x < clip.X || x >= clip.Right() || y < clip.Y || y >= clip.Bottom() {
			return nil
		}
	}
	return &c.cells[row*c.cols+col]
}

func centre(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

func cellOf(p render.Point) (int, int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// span returns the cells along one axis whose centres fall in [lo, hi)
func span(lo, hi, size float64, n int) (from, to int) {
	from = int(math.Ceil(lo/size - 0.5))
	to = int(math.Ceil(hi/size-0.5)) - 1
	return max(from, 0), min(to, n-1)
}

func (c *Canvas) fill(col, row int, colr color.NRGBA) {
	cl := c.at(col, row)
	if cl == nil {
		return
	}
	cl.bg = blend(cl.bg, colr)
	if colr.A == 255 {
		cl.ch = 0
		return
	}
	cl.fg = blend(cl.fg, colr)
}

func (c *Canvas) glyph(col, row int, ch rune, colr color.NRGBA) {
	cl := c.at(col, row)
	if cl == nil {
		return
	}
	cl.ch = ch
	cl.fg = blend(cl.bg, colr)
}

func (c *Canvas) Background(colr color.NRGBA) {
	bg := toColorful(colr)
	for i := range c.cells {
		c.cells[i] = cell{fg: bg, bg: bg}
	}
}

func (c *Canvas) FillRect(r render.Rect, radius float64, colr color.NRGBA) {
	if r.Empty() {
		return
	}
	switch {
	case r.H < CellHeight/2:
		_, row := cellOf(render.Point{X: r.X, Y: r.Y + r.H/2})
		c0, c1 := span(r.X, r.Right(), CellWidth, c.cols)
		for col := c0; col <= c1; col++ {
			c.glyph(col, row, '━', colr)
		}
	case r.W < CellWidth/2:
		col, _ := cellOf(render.Point{X: r.X + r.W/2, Y: r.Y})
		r0, r1 := span(r.Y, r.Bottom(), CellHeight, c.rows)
		for row := r0; row <= r1; row++ {
			c.glyph(col, row, '┃', colr)
		}
	default:
		c0, c1 := span(r.X, r.Right(), CellWidth, c.cols)
		r0, r1 := span(r.Y, r.Bottom(), CellHeight, c.rows)
		round := radius >= CellWidth && c1-c0 >= 2 && r1 > r0
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				if round && (row == r0 || row == r1) && (col == c0 || col == c1) {
					continue
				}
				c.fill(col, row, colr)
			}
		}
	}
}

func (c *Canvas) StrokeRect(r render.Rect, radius, _ float64, colr color.NRGBA) {
	c0, c1 := span(r.X, r.Right(), CellWidth, c.cols)
	r0, r1 := span(r.Y, r.Bottom(), CellHeight, c.rows)
	if c0 > c1 || r0 > r1 {
		col, row := cellOf(render.Point{X: r.X + r.W/2, Y: r.Y + r.H/2})
		c.glyph(col, row, '▭', colr)
		return
	}
	for col := c0; col <= c1; col++ {
		c.glyph(col, r0, '─', colr)
		c.glyph(col, r1, '─', colr)
	}
	for row := r0; row <= r1; row++ {
		c.glyph(c0, row, '│', colr)
		c.glyph(c1, row, '│', colr)
	}
	if r0 == r1 || c0 == c1 {
		return
	}
	corners := []rune("┌┐└┘")
	if radius > 0 {
		corners = []rune("╭╮╰╯")
	}
	c.glyph(c0, r0, corners[0], colr)
	c.glyph(c1, r0, corners[1], colr)
	c.glyph(c0, r1, corners[2], colr)
	c.glyph(c1, r1, corners[3], colr)
}

func (c *Canvas) FillCircle(center render.Point, d float64, colr color.NRGBA) {
	rad := d / 2
	c0, c1 := span(center.X-rad, center.X+rad, CellWidth, c.cols)
	r0, r1 := span(center.Y-rad, center.Y+rad, CellHeight, c.rows)
	hit := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := centre(col, row)
			if math.Hypot(x-center.X, y-center.Y) <= rad {
				c.fill(col, row, colr)
				hit = true
			}
		}
	}
	if !hit {
		col, row := cellOf(center)
		c.glyph(col, row, '●', colr)
	}
}

func (c *Canvas) StrokeCircle(center render.Point, d, weight float64, colr color.NRGBA) {
	if d < 2*CellHeight {
		col, row := cellOf(center)
		c.glyph(col, row, '○', colr)
		return
	}
	c.Arc(center, d, d, 0, 2*math.Pi, weight, colr)
}

// lineGlyph picks a box-drawing stroke for a direction in pixels
func lineGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx/CellWidth), math.Abs(dy/CellHeight)
	switch {
	case ay*2 < ax:
		return '─'
	case ax*2 < ay:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (c *Canvas) Line(from, to render.Point, _ float64, colr color.NRGBA) {
	dx, dy := to.X-from.X, to.Y-from.Y
	ch := lineGlyph(dx, dy)
	steps := max(1, int(math.Ceil(2*math.Max(math.Abs(dx)/CellWidth, math.Abs(dy)/CellHeight))))
	lastCol, lastRow := -1, -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row := cellOf(render.Point{X: from.X + t*dx, Y: from.Y + t*dy})
		if col == lastCol && row == lastRow {
			continue
		}
		lastCol, lastRow = col, row
		c.glyph(col, row, ch, colr)
	}
}

func (c *Canvas) Arc(center render.Point, w, h, start, stop, _ float64, colr color.NRGBA) {
	rx, ry := w/2, h/2
	steps := max(8, int(math.Ceil((stop-start)*math.Max(rx/CellWidth, ry/CellHeight)*2)))
	lastCol, lastRow := -1, -1
	for i := 0; i <= steps; i++ {
		a := start + (stop-start)*float64(i)/float64(steps)
		p := render.Point{X: center.X + rx*math.Cos(a), Y: center.Y + ry*math.Sin(a)}
		col, row := cellOf(p)
		if col == lastCol && row == lastRow {
			continue
		}
		lastCol, lastRow = col, row
		c.glyph(col, row, lineGlyph(-rx*math.Sin(a), ry*math.Cos(a)), colr)
	}
}

func (c *Canvas) FillTriangle(a, b, p render.Point, colr color.NRGBA) {
	c0, c1 := span(math.Min(a.X, math.Min(b.X, p.X)), math.Max(a.X, math.Max(b.X, p.X)), CellWidth, c.cols)
	r0, r1 := span(math.Min(a.Y, math.Min(b.Y, p.Y)), math.Max(a.Y, math.Max(b.Y, p.Y)), CellHeight, c.rows)
	edge := func(u, v render.Point, x, y float64) float64 {
		return (v.X-u.X)*(y-u.Y) - (v.Y-u.Y)*(x-u.X)
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := centre(col, row)
			e1, e2, e3 := edge(a, b, x, y), edge(b, p, x, y), edge(p, a, x, y)
			if (e1 >= 0 && e2 >= 0 && e3 >= 0) || (e1 <= 0 && e2 <= 0 && e3 <= 0) {
				c.fill(col, row, colr)
			}
		}
	}
}

// Text lays s out one cell per column from the cell holding x, on the
// row holding the middle of the text's em box above baseline y.
func (c *Canvas) Text(x, y, size float64, s string, colr color.NRGBA) {
	col, row := cellOf(render.Point{X: x, Y: y - size/2})
	right := c.cols
	if n := len(c.clips); n > 0 {
		_, right = span(c.clips[n-1].X, c.clips[n-1].Right(), CellWidth, c.cols)
		right++
	}
	if col >= right {
		return
	}
	s = truncate.String(s, uint(right-col))

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.glyph(col, row, r, colr)
		if w == 2 {
			if cl := c.at(col+1, row); cl != nil {
				cl.ch = 0
			}
		}
		col += w
	}
}

func (c *Canvas) TextWidth(_ float64, s string) float64 {
	return float64(runewidth.StringWidth(s) * CellWidth)
}

func (c *Canvas) PushClip(r render.Rect) {
	if n := len(c.clips); n > 0 {
		r = r.Intersect(c.clips[n-1])
	}
	c.clips = append(c.clips, r)
}

func (c *Canvas) PopClip() {
	if n := len(c.clips); n > 0 {
		c.clips = c.clips[:n-1]
	}
}

func (c *Canvas) style(fg, bg colorful.Color) lipgloss.Style {
	k := [2]colorful.Color{fg, bg}
	st, ok := c.styles[k]
	if !ok {
		st = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg.Hex())).
			Background(lipgloss.Color(bg.Hex()))
		c.styles[k] = st
	}
	return st
}

// View renders the grid, merging runs of equal colour into one style
func (c *Canvas) View() string {
	return c.render(true)
}

// Plain renders the grid without colour
func (c *Canvas) Plain() string {
	return c.render(false)
}

func (c *Canvas) render(styled bool) string {
	var b strings.Builder
	run := make([]rune, 0, c.cols)
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var fg, bg colorful.Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			if styled {
				b.WriteString(c.style(fg, bg).Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}

		wide := false
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			ch := cl.ch
			if ch == 0 {
				if wide {
					wide = false
					continue
				}
				ch = ' '
			}
			if len(run) > 0 && (cl.fg != fg || cl.bg != bg) {
				flush()
			}
			fg, bg = cl.fg, cl.bg
			run = append(run, ch)
			wide = runewidth.RuneWidth(ch) == 2
		}
		flush()
	}
	return b.String()
}
