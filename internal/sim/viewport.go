package sim

import "math"

// overscan rows drawn beyond the viewport to hide partial-row gaps
const overscan = 2

// Viewport is the scroll model. Manual scrolling and auto-scroll are
// mutually exclusive: any manual delta turns auto-scroll off.
type Viewport struct {
	Offset      float64
	AutoScroll  bool
	AutoElapsed float64

	Width  float64
	Height float64

	dragging bool
	lastY    float64
}

func NewViewport(width, height float64) Viewport {
	return Viewport{AutoScroll: true, Width: width, Height: height}
}

// Scroll applies a manual delta in pixels
func (v *Viewport) Scroll(delta float64) {
	v.AutoScroll = false
	v.Offset += delta
}

func (v *Viewport) BeginDrag(y float64) {
	v.dragging = true
	v.lastY = y
}

// DragTo scrolls by the pointer movement since the last drag position.
// Dragging down moves the content down, i.e. scrolls up.
func (v *Viewport) DragTo(y float64) {
	if !v.dragging {
		return
	}
	v.Scroll(v.lastY - y)
	v.lastY = y
}

func (v *Viewport) EndDrag() { v.dragging = false }

func (v Viewport) Dragging() bool { return v.dragging }

func (v *Viewport) ToggleAutoScroll() { v.AutoScroll = !v.AutoScroll }

// AutoScrollSpeed is the auto-scroll velocity in pixels/sec
func AutoScrollSpeed(cfg Config, elapsed float64) float64 {
	return Lerp(cfg.ScrollFast, cfg.ScrollCruise, Smoothstep(0, cfg.ScrollRamp, elapsed))
}

// Advance integrates auto-scroll over dt. elapsed is time since reset.
func (v *Viewport) Advance(cfg Config, dt, elapsed float64) {
	v.AutoElapsed = elapsed
	if v.AutoScroll {
		v.Offset += dt * AutoScrollSpeed(cfg, elapsed)
	}
}

// MaxScroll is the largest valid offset for the given content height
func MaxScroll(contentHeight, viewHeight, margin float64) float64 {
	return math.Max(0, contentHeight-viewHeight+margin)
}

// Clamp pins the offset into [0, MaxScroll]
func (v *Viewport) Clamp(contentHeight, margin float64) {
	v.Offset = clamp(v.Offset, 0, MaxScroll(contentHeight, v.Height, margin))
}

// VisibleRange returns the inclusive index range of rows that intersect a
// viewport of viewHeight pixels scrolled to offset, plus overscan. ok is
// false when nothing can be shown.
func VisibleRange(offset, rowHeight, viewHeight float64, n int) (first, last int, ok bool) {
	if n <= 0 || rowHeight <= 0 || viewHeight <= 0 || math.IsNaN(offset) {
		return 0, 0, false
	}
	first = 0
	if offset > 0 {
		first = int(math.Min(math.Floor(offset/rowHeight), float64(n-1)))
	}
	count := int(math.Ceil(viewHeight/rowHeight)) + overscan
	last = min(n-1, first+count)
	return first, last, true
}
