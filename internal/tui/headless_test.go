package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surge-downloader/dlhist/internal/render"
	"github.com/surge-downloader/dlhist/internal/sim"
)

func runHeadless(t *testing.T, d time.Duration) RunReport {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Seed = 11
	s := sim.New(cfg)
	r := render.New(cfg.Geometry, render.DefaultPalette())
	return Simulate(s, r, d, 60, 1280, 800)
}

func TestSimulate_Report(t *testing.T) {
	rep := runHeadless(t, 5*time.Second)

	assert.Equal(t, 300, rep.Frames)
	assert.Equal(t, 4200, rep.Cap)
	assert.Len(t, rep.PerSecond, 5)
	assert.Equal(t, rep.Created, rep.StoreLen, "nothing evicted below the store capacity")
	assert.Equal(t, rep.StoreLen, rep.Stats.Downloading+rep.Stats.Complete+rep.Stats.Failed)

	sum := 0.0
	for _, v := range rep.PerSecond {
		sum += v
	}
	assert.Equal(t, float64(rep.Created-120), sum, "buckets hold everything created after the seed batch")

	// the burst slows down over the ramp
	assert.Greater(t, rep.PerSecond[0], rep.PerSecond[4])
}

func TestSimulate_DrawsOnlyVisibleCards(t *testing.T) {
	rep := runHeadless(t, 2*time.Second)

	require.Positive(t, rep.MaxCardsDrawn)
	// 800px window, 104px rows, plus overscan and a partial row
	assert.LessOrEqual(t, rep.MaxCardsDrawn, 10)
	assert.Less(t, rep.MaxCardsDrawn, rep.StoreLen)
}

func TestSimulate_ReachesCap(t *testing.T) {
	cfg := sim.CompactConfig()
	cfg.Seed = 5
	cfg.TotalCap = 400
	cfg.SeedCount = 20
	s := sim.New(cfg)
	r := render.New(cfg.Geometry, render.DefaultPalette())

	rep := Simulate(s, r, 10*time.Second, 30, 640, 480)
	assert.Equal(t, 400, rep.Created)
	assert.Equal(t, 400, rep.StoreLen)
}

func TestSimulate_FrameRateClamped(t *testing.T) {
	tests := []struct {
		name       string
		fps        int
		wantFPS    int
		wantFrames int
	}{
		{"zero", 0, 1, 1},
		{"negative", -5, 1, 1},
		{"in range", 50, 50, 50},
		{"at max", MaxFPS, MaxFPS, MaxFPS},
		{"above a billion", 2_000_000_000, MaxFPS, MaxFPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sim.CompactConfig()
			cfg.Seed = 1
			s := sim.New(cfg)
			r := render.New(cfg.Geometry, render.DefaultPalette())

			var rep RunReport
			require.NotPanics(t, func() {
				rep = Simulate(s, r, time.Second, tt.fps, 640, 480)
			})
			assert.Equal(t, tt.wantFPS, rep.FPS)
			assert.Equal(t, tt.wantFrames, rep.Frames)
		})
	}
}

func TestRenderSummary(t *testing.T) {
	rep := RunReport{
		Session:       "abc",
		Preset:        "chrome",
		Duration:      3 * time.Second,
		FPS:           60,
		Frames:        180,
		Created:       1500,
		Cap:           4200,
		StoreLen:      1500,
		Stats:         sim.Stats{Downloading: 1400, Complete: 90, Failed: 10},
		PerSecond:     []float64{900, 400, 80},
		MaxCardsDrawn: 9,
	}
	out := RenderSummary(rep, 80)

	for _, want := range []string{"abc", "chrome", "3s at 60 fps", "1,500 of 4,200", "1,400 Downloading", "peak 900/s", "at most 9 cards"} {
		assert.Contains(t, out, want)
	}
}
