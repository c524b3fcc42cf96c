package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/surge-downloader/dlhist/internal/sim"
	"github.com/surge-downloader/dlhist/internal/utils"
)

const (
	Title       = "Download History"
	Placeholder = "Search download history"
	ClearLabel  = "Clear all"
	Section     = "Today"
	FromLine    = "From https://editor.p5js.org"
)

// header and card metrics in pixels
const (
	minPagePad  = 28
	pagePadFrac = 0.06
	titleBlockW = 260
	clearW      = 112
	searchGap   = 16
	searchH     = 44
	pill        = 999

	cardInset  = 6
	cardRadius = 16
	textIndent = 92
	nameRoom   = 260
	barRoom    = 220
	iconsRoom  = 120
	docSize    = 44

	thumbMin   = 34
	thumbWidth = 4
)

// Column is the shared horizontal column the header, section label and
// cards align to.
type Column struct {
	X, W float64
}

// ColumnFor lays out the column for a window width
func ColumnFor(width, maxWidth float64) Column {
	pad := math.Max(minPagePad, math.Floor(width*pagePadFrac))
	w := math.Min(maxWidth, width-2*pad)
	return Column{X: math.Floor((width - w) / 2), W: w}
}

// StatusLine is the secondary line of a card
func StatusLine(it sim.Item) string {
	switch it.State {
	case sim.StateComplete:
		return "Completed  •  " + utils.FormatMB(it.SizeMB)
	case sim.StateFailed:
		return "Failed – Network error  •  " + utils.FormatMB(it.SizeMB)
	default:
		pct := int(math.Floor(it.Progress * 100))
		return fmt.Sprintf("%d%%  •  %s  •  %s left", pct, utils.FormatMB(it.SizeMB), utils.FormatMB(it.SizeMB*(1-it.Progress)))
	}
}

type Option func(*Renderer)

// WithThumbEasing routes the scrollbar thumb's target y through ease
// before drawing, e.g. to animate it with a spring.
func WithThumbEasing(ease func(target float64) float64) Option {
	return func(r *Renderer) { r.ease = ease }
}

// Renderer draws a simulation frame as a downloads page
type Renderer struct {
	geom    sim.Geometry
	palette Palette
	ease    func(float64) float64
}

func New(geom sim.Geometry, palette Palette, opts ...Option) *Renderer {
	r := &Renderer{geom: geom, palette: palette}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Palette() Palette { return r.palette }

// Draw paints the whole page. Only the frame's visible items are drawn.
func (r *Renderer) Draw(s Surface, f sim.Frame) {
	p := &r.palette
	g := r.geom
	w, h := s.Size()

	s.Background(p.Background)
	col := ColumnFor(w, g.MaxColumnWidth)
	if col.W <= 0 || h <= 0 {
		return
	}

	r.drawHeader(s, col)

	sectionY := g.HeaderTop + g.HeaderHeight + g.SectionGap
	s.Text(col.X, sectionY, 22, Section, p.Section)

	list := Rect{X: col.X, Y: g.ListTop(), W: col.W, H: g.ListHeight(h)}
	if list.Empty() {
		return
	}

	s.PushClip(list)
	for i, it := range f.Items {
		y := list.Y + float64(f.First+i)*g.RowHeight - f.Offset
		r.drawCard(s, it, Rect{X: list.X, Y: y, W: list.W, H: g.RowHeight})
	}
	s.PopClip()

	if thumb, ok := r.Thumb(f, list); ok {
		s.FillRect(thumb, 6, p.Thumb)
	}
}

// Thumb returns the scrollbar thumb for a list viewport. ok is false
// when the rows fit without scrolling.
func (r *Renderer) Thumb(f sim.Frame, list Rect) (Rect, bool) {
	total := float64(f.Total) * r.geom.RowHeight
	if total <= list.H+2 {
		return Rect{}, false
	}
	th := math.Max(thumbMin, list.H*(list.H/total))
	travel := math.Max(1, total-list.H)
	// the page scrolls past the rows into the footer padding; keep the
	// thumb inside the track there
	t := math.Min(1, math.Max(0, f.Offset/travel))
	y := list.Y + t*(list.H-th)
	if r.ease != nil {
		y = r.ease(y)
	}
	return Rect{X: list.Right() - 6, Y: y, W: thumbWidth, H: th}, true
}

func (r *Renderer) drawHeader(s Surface, col Column) {
	p := &r.palette
	y := r.geom.HeaderTop

	// browser mark
	mark := Point{col.X + 10, y + 28}
	s.FillCircle(mark, 22, p.Mark)
	s.FillCircle(mark, 12, p.Background)

	s.Text(col.X+44, y+26, 24, Title, p.HeaderText)

	sb := Rect{X: col.X + titleBlockW, Y: y + 4, W: col.W - titleBlockW - clearW - searchGap, H: searchH}
	if !sb.Empty() {
		s.FillRect(sb, pill, p.SearchBG)
		c := Point{sb.X + 22, sb.Y + sb.H/2 + 1}
		s.StrokeCircle(c, 14, 2, p.Glyph)
		s.Line(Point{c.X + 6, c.Y + 6}, Point{c.X + 13, c.Y + 13}, 2, p.Glyph)
		s.Text(sb.X+44, sb.Y+29, 18, Placeholder, p.Placeholder)
	}

	btn := Rect{X: col.X + col.W - clearW, Y: y + 4, W: clearW, H: searchH}
	s.StrokeRect(btn, pill, 2, p.Outline)
	s.Text(btn.X+26, btn.Y+29, 16, ClearLabel, p.ClearAll)
}

func (r *Renderer) drawCard(s Surface, it sim.Item, row Rect) {
	p := &r.palette
	card := Rect{X: row.X, Y: row.Y + cardInset, W: row.W, H: row.H - 2*cardInset}
	s.FillRect(card, cardRadius, p.Card)

	r.drawDoc(s, card.X+22, card.Y+18, it.Ext)

	measure := func(t string) float64 { return s.TextWidth(16, t) }
	s.Text(card.X+textIndent, card.Y+34, 16, utils.ClipText(it.Name, card.W-nameRoom, measure), p.Link)

	if it.ShowFrom {
		s.Text(card.X+textIndent, card.Y+62, 16, FromLine, p.Origin)
	} else {
		s.Text(card.X+textIndent, card.Y+62, 14, StatusLine(it), p.Muted)
	}

	rx, cy := card.Right()-iconsRoom, card.Y+28
	r.drawLinkIcon(s, rx, cy)
	r.drawFolderIcon(s, rx+44, cy)
	r.drawCloseIcon(s, rx+92, cy)

	if it.State == sim.StateDownloading {
		bar := Rect{X: card.X + textIndent, Y: card.Bottom() - 18, W: card.W - barRoom, H: 6}
		s.FillRect(bar, pill, p.Track)
		fill := bar
		fill.W = bar.W * it.Progress
		s.FillRect(fill, pill, p.Bar)
	}
}

func (r *Renderer) drawDoc(s Surface, x, y float64, ext string) {
	p := &r.palette
	s.FillRect(Rect{X: x, Y: y, W: docSize, H: docSize}, 10, p.Doc)
	s.FillTriangle(Point{x + 30, y}, Point{x + 44, y + 14}, Point{x + 44, y}, p.DocFold)
	s.Text(x+10, y+38, 10, strings.ToUpper(ext), p.Accent(Classify(ext)))
}

func (r *Renderer) drawLinkIcon(s Surface, x, y float64) {
	c := r.palette.Glyph
	s.Arc(Point{x + 8, y + 8}, 14, 10, -math.Pi/3, math.Pi*4/3, 2, c)
	s.Arc(Point{x + 18, y + 8}, 14, 10, math.Pi*2/3, math.Pi*7/3, 2, c)
}

func (r *Renderer) drawFolderIcon(s Surface, x, y float64) {
	c := r.palette.Glyph
	s.StrokeRect(Rect{X: x, Y: y, W: 22, H: 14}, 3, 2, c)
	s.Line(Point{x + 4, y}, Point{x + 9, y - 5}, 2, c)
	s.Line(Point{x + 9, y - 5}, Point{x + 18, y - 5}, 2, c)
}

func (r *Renderer) drawCloseIcon(s Surface, x, y float64) {
	c := r.palette.Glyph
	s.Line(Point{x + 4, y + 2}, Point{x + 18, y + 16}, 2, c)
	s.Line(Point{x + 18, y + 2}, Point{x + 4, y + 16}, 2, c)
}
