package tui

import (
	"math"
	"time"

	"github.com/surge-downloader/dlhist/internal/events"
	"github.com/surge-downloader/dlhist/internal/render"
	"github.com/surge-downloader/dlhist/internal/sim"
)

// Simulate drives s with synthetic frame timestamps for d at fps and
// draws every frame onto a recorder of width×height pixels. Nothing
// sleeps; a 30 second run takes as long as the arithmetic does. fps is
// clamped to [1, MaxFPS].
func Simulate(s *sim.Simulation, r *render.Renderer, d time.Duration, fps int, width, height float64) RunReport {
	fps = min(max(fps, 1), MaxFPS)
	step := time.Second / time.Duration(fps)
	frames := int(d / step)

	rec := render.NewRecorder(width, height)
	s.HandleInput(events.ResizeMsg{Width: width, Height: height})

	rep := RunReport{
		Session:  s.Session(),
		Duration: d,
		FPS:      fps,
		Frames:   frames,
		Cap:      s.Config().TotalCap,
	}
	buckets := make([]float64, int(math.Ceil(d.Seconds())))

	card := r.Palette().Card
	prev := s.Created()
	for i := 0; i <= frames; i++ {
		f := s.Tick(time.Duration(i) * step)

		if len(buckets) > 0 {
			b := min(int(f.Elapsed), len(buckets)-1)
			buckets[b] += float64(f.Created - prev)
		}
		prev = f.Created

		rec.Reset()
		r.Draw(rec, f)
		drawn := 0
		for _, c := range rec.Commands {
			if c.Op == render.OpFillRect && c.Color == card {
				drawn++
			}
		}
		rep.MaxCardsDrawn = max(rep.MaxCardsDrawn, drawn)
	}

	rep.Created = s.Created()
	rep.StoreLen = s.Len()
	rep.Stats = s.Stats()
	rep.PerSecond = buckets
	return rep
}
