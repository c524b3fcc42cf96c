package render

import "image/color"

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of r and o, or an empty rect
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Surface is an immediate-mode drawing target in pixel coordinates with
// the origin at the top left. Text is drawn from its baseline. Drawing
// calls never fail; whatever falls outside the surface or the current clip
// is dropped.
type Surface interface {
	Size() (width, height float64)
	Background(c color.NRGBA)

	FillRect(r Rect, radius float64, c color.NRGBA)
	StrokeRect(r Rect, radius, weight float64, c color.NRGBA)
	FillCircle(center Point, diameter float64, c color.NRGBA)
	StrokeCircle(center Point, diameter, weight float64, c color.NRGBA)
	Line(from, to Point, weight float64, c color.NRGBA)
	// Arc strokes an elliptical arc inscribed in a w×h box around center,
	// from start to stop radians, clockwise with y pointing down.
	Arc(center Point, w, h, start, stop, weight float64, c color.NRGBA)
	FillTriangle(a, b, p Point, c color.NRGBA)

	Text(x, y, size float64, s string, c color.NRGBA)
	TextWidth(size float64, s string) float64

	PushClip(r Rect)
	PopClip()
}
