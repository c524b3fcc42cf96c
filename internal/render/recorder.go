package render

import (
	"image/color"
	"unicode/utf8"
)

type Op int

const (
	OpBackground Op = iota
	OpFillRect
	OpStrokeRect
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpArc
	OpFillTriangle
	OpText
)

var opNames = [...]string{"background", "fill-rect", "stroke-rect", "fill-circle", "stroke-circle", "line", "arc", "fill-triangle", "text"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Command is one recorded draw call
type Command struct {
	Op     Op
	Rect   Rect    // rects, and the bounding box of circles and arcs
	Points []Point // lines and triangles
	Radius float64
	Weight float64
	Size   float64 // text size
	Start  float64 // arc angles
	Stop   float64
	Text   string
	Color  color.NRGBA
	Clip   *Rect // active clip, nil when unclipped
}

// Recorder is a Surface that keeps every draw call instead of painting.
// Text advances a fixed half em per rune.
type Recorder struct {
	Width, Height float64
	Commands      []Command

	clips []Rect
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Reset drops recorded commands, keeping the size
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.clips = r.clips[:0]
}

func (r *Recorder) add(c Command) {
	if n := len(r.clips); n > 0 {
		clip := r.clips[n-1]
		c.Clip = &clip
	}
	r.Commands = append(r.Commands, c)
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Background(c color.NRGBA) {
	r.add(Command{Op: OpBackground, Rect: Rect{W: r.Width, H: r.Height}, Color: c})
}

func (r *Recorder) FillRect(rect Rect, radius float64, c color.NRGBA) {
	r.add(Command{Op: OpFillRect, Rect: rect, Radius: radius, Color: c})
}

func (r *Recorder) StrokeRect(rect Rect, radius, weight float64, c color.NRGBA) {
	r.add(Command{Op: OpStrokeRect, Rect: rect, Radius: radius, Weight: weight, Color: c})
}

func (r *Recorder) FillCircle(center Point, d float64, c color.NRGBA) {
	r.add(Command{Op: OpFillCircle, Rect: box(center, d, d), Color: c})
}

func (r *Recorder) StrokeCircle(center Point, d, weight float64, c color.NRGBA) {
	r.add(Command{Op: OpStrokeCircle, Rect: box(center, d, d), Weight: weight, Color: c})
}

func (r *Recorder) Line(from, to Point, weight float64, c color.NRGBA) {
	r.add(Command{Op: OpLine, Points: []Point{from, to}, Weight: weight, Color: c})
}

func (r *Recorder) Arc(center Point, w, h, start, stop, weight float64, c color.NRGBA) {
	r.add(Command{Op: OpArc, Rect: box(center, w, h), Start: start, Stop: stop, Weight: weight, Color: c})
}

func (r *Recorder) FillTriangle(a, b, p Point, c color.NRGBA) {
	r.add(Command{Op: OpFillTriangle, Points: []Point{a, b, p}, Color: c})
}

func (r *Recorder) Text(x, y, size float64, s string, c color.NRGBA) {
	r.add(Command{Op: OpText, Rect: Rect{X: x, Y: y, W: r.TextWidth(size, s), H: size}, Size: size, Text: s, Color: c})
}

func (r *Recorder) TextWidth(size float64, s string) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}

// PushClip intersects r with the current clip
func (r *Recorder) PushClip(rect Rect) {
	if n := len(r.clips); n > 0 {
		rect = rect.Intersect(r.clips[n-1])
	}
	r.clips = append(r.clips, rect)
}

func (r *Recorder) PopClip() {
	if n := len(r.clips); n > 0 {
		r.clips = r.clips[:n-1]
	}
}

// Texts returns the strings drawn, in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many commands of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

func box(center Point, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}
