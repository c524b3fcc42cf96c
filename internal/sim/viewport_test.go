package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name              string
		offset, row, view float64
		n                 int
		first, last       int
		ok                bool
	}{
		{"top of list", 0, 104, 632, 500, 0, 9, true},
		{"partial row", 250, 104, 632, 500, 2, 11, true},
		{"near the end", 104 * 495, 104, 632, 500, 495, 499, true},
		{"offset past content", 1e9, 104, 632, 500, 499, 499, true},
		{"negative offset", -300, 104, 632, 500, 0, 9, true},
		{"short list", 0, 104, 632, 3, 0, 2, true},
		{"empty store", 0, 104, 632, 0, 0, 0, false},
		{"zero height", 0, 104, 0, 500, 0, 0, false},
		{"zero row height", 0, 0, 632, 500, 0, 0, false},
		{"NaN offset", math.NaN(), 104, 632, 500, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, ok := VisibleRange(tt.offset, tt.row, tt.view, tt.n)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestVisibleRange_CoversViewport(t *testing.T) {
	const row = 96.0
	for _, n := range []int{1, 2, 7, 50, 2000} {
		for _, view := range []float64{1, 95, 96, 97, 500, 1333} {
			for off := 0.0; off < float64(n)*row; off += 37 {
				first, last, ok := VisibleRange(off, row, view, n)
				if !assert.True(t, ok) {
					return
				}
				assert.GreaterOrEqual(t, first, 0)
				assert.LessOrEqual(t, first, last)
				assert.Less(t, last, n)

				// every row intersecting [off, off+view) is in range
				lo := int(math.Floor(off / row))
				hi := min(n-1, int(math.Ceil((off+view)/row))-1)
				assert.LessOrEqual(t, first, lo)
				assert.GreaterOrEqual(t, last, hi)
			}
		}
	}
}

func TestViewport_WheelDisablesAutoScroll(t *testing.T) {
	v := NewViewport(1200, 800)
	v.Offset = 300
	assert.True(t, v.AutoScroll)

	v.Scroll(50)

	assert.False(t, v.AutoScroll)
	assert.Equal(t, 350.0, v.Offset)
}

func TestViewport_Drag(t *testing.T) {
	v := NewViewport(1200, 800)
	v.Offset = 1000

	v.DragTo(10) // no drag in progress
	assert.Equal(t, 1000.0, v.Offset)
	assert.True(t, v.AutoScroll)

	v.BeginDrag(400)
	assert.True(t, v.Dragging())
	v.DragTo(300) // pointer moves up, content scrolls down the list
	assert.Equal(t, 1100.0, v.Offset)
	assert.False(t, v.AutoScroll)
	v.DragTo(450)
	assert.Equal(t, 950.0, v.Offset)

	v.EndDrag()
	v.DragTo(0)
	assert.False(t, v.Dragging())
	assert.Equal(t, 950.0, v.Offset)
}

func TestViewport_AutoScroll(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 360, AutoScrollSpeed(cfg, 0), 1e-9)
	assert.InDelta(t, 260, AutoScrollSpeed(cfg, 5), 1e-9)
	assert.InDelta(t, 160, AutoScrollSpeed(cfg, 10), 1e-9)
	assert.InDelta(t, 160, AutoScrollSpeed(cfg, 90), 1e-9)

	v := NewViewport(1200, 800)
	v.Advance(cfg, 0.05, 0)
	assert.InDelta(t, 18, v.Offset, 1e-9)

	v.ToggleAutoScroll()
	v.Advance(cfg, 0.05, 0.05)
	assert.InDelta(t, 18, v.Offset, 1e-9)
	assert.Equal(t, 0.05, v.AutoElapsed)
}

func TestViewport_Clamp(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		content float64
		want    float64
	}{
		{"inside", 500, 5000, 500},
		{"negative", -80, 5000, 0},
		{"past max", 9000, 5000, 4240},
		{"content shorter than view", 120, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(1200, 800)
			v.Offset = tt.offset
			v.Clamp(tt.content, 40)
			assert.Equal(t, tt.want, v.Offset)
		})
	}

	assert.Equal(t, 0.0, MaxScroll(100, 800, 40))
	assert.Equal(t, 4240.0, MaxScroll(5000, 800, 40))
}
