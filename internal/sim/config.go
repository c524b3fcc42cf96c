package sim

import (
	"errors"
	"fmt"
)

// Preset names accepted by PresetConfig
const (
	PresetChrome  = "chrome"
	PresetCompact = "compact"
)

// Config holds every tunable of the simulation. The failure, jitter and
// rate constants were picked by eye; treat them as knobs, not semantics.
type Config struct {
	// Creation schedule
	TotalCap    int     `yaml:"total_cap"`
	SeedCount   int     `yaml:"seed_count"`
	FastRate    float64 `yaml:"fast_rate"`    // items/sec at t=0
	SlowRate    float64 `yaml:"slow_rate"`    // items/sec after the ramp
	RampSeconds float64 `yaml:"ramp_seconds"` // creation ramp duration
	MaxDelta    float64 `yaml:"max_delta"`    // per-tick dt ceiling, seconds

	// Generation
	SeedCompleteChance float64 `yaml:"seed_complete_chance"`
	SeedFailChance     float64 `yaml:"seed_fail_chance"`
	ShowFromChance     float64 `yaml:"show_from_chance"`

	// Progress simulation
	JitterChance float64 `yaml:"jitter_chance"`
	JitterMin    float64 `yaml:"jitter_min"`
	JitterMax    float64 `yaml:"jitter_max"`
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedMax     float64 `yaml:"speed_max"`
	FailChance   float64 `yaml:"fail_chance"`

	// Auto-scroll, pixels/sec
	ScrollFast   float64 `yaml:"scroll_fast"`
	ScrollCruise float64 `yaml:"scroll_cruise"`
	ScrollRamp   float64 `yaml:"scroll_ramp"`

	Geometry Geometry `yaml:"geometry"`

	// Seed for the default random source. Zero means seed from the clock.
	Seed uint64 `yaml:"seed"`
}

// Geometry is the page layout in pixels. The simulation needs it to know
// content height and the list viewport; the renderer draws with it.
type Geometry struct {
	RowHeight      float64 `yaml:"row_height"`
	HeaderTop      float64 `yaml:"header_top"`
	HeaderHeight   float64 `yaml:"header_height"`
	SectionGap     float64 `yaml:"section_gap"`
	ListGap        float64 `yaml:"list_gap"`
	ListBottom     float64 `yaml:"list_bottom"`
	ChromePadding  float64 `yaml:"chrome_padding"`
	ScrollMargin   float64 `yaml:"scroll_margin"`
	MaxColumnWidth float64 `yaml:"max_column_width"`
}

// ListTop is the y of the first list row
func (g Geometry) ListTop() float64 {
	return g.HeaderTop + g.HeaderHeight + g.SectionGap + g.ListGap
}

// ChromeHeight is the fixed, non-row part of the content height
func (g Geometry) ChromeHeight() float64 {
	return g.HeaderHeight + g.SectionGap + g.ListGap + g.ChromePadding
}

// ListHeight returns the list viewport height for a window of height h
func (g Geometry) ListHeight(h float64) float64 {
	lh := h - g.ListTop() - g.ListBottom
	if lh < 0 {
		return 0
	}
	return lh
}

// DefaultConfig is the full-page browser look
func DefaultConfig() Config {
	return Config{
		TotalCap:    4200,
		SeedCount:   120,
		FastRate:    360,
		SlowRate:    10,
		RampSeconds: 12,
		MaxDelta:    0.05,

		SeedCompleteChance: 0.10,
		SeedFailChance:     0.018,
		ShowFromChance:     0.10,

		JitterChance: 0.004,
		JitterMin:    0.35,
		JitterMax:    1.6,
		SpeedMin:     0.015,
		SpeedMax:     0.42,
		FailChance:   0.03,

		ScrollFast:   360,
		ScrollCruise: 160,
		ScrollRamp:   10,

		Geometry: Geometry{
			RowHeight:      104,
			HeaderTop:      20,
			HeaderHeight:   88,
			SectionGap:     24,
			ListGap:        18,
			ListBottom:     18,
			ChromePadding:  220,
			ScrollMargin:   40,
			MaxColumnWidth: 1120,
		},
	}
}

// CompactConfig is the smaller variant: a lower cap, gentler rates and
// rows that land on whole terminal cells.
func CompactConfig() Config {
	cfg := DefaultConfig()
	cfg.TotalCap = 2000
	cfg.SeedCount = 60
	cfg.FastRate = 240
	cfg.SlowRate = 6
	cfg.RampSeconds = 10
	cfg.FailChance = 0.05
	cfg.ScrollFast = 300
	cfg.ScrollCruise = 120
	cfg.ScrollRamp = 8
	cfg.Geometry.RowHeight = 96
	cfg.Geometry.MaxColumnWidth = 960
	return cfg
}

// PresetConfig returns the named preset
func PresetConfig(name string) (Config, error) {
	switch name {
	case "", PresetChrome:
		return DefaultConfig(), nil
	case PresetCompact:
		return CompactConfig(), nil
	default:
		return Config{}, fmt.Errorf("unknown preset %q (want %q or %q)", name, PresetChrome, PresetCompact)
	}
}

// Validate reports every out-of-range field
func (c Config) Validate() error {
	var errs []error
	if c.TotalCap <= 0 {
		errs = append(errs, fmt.Errorf("total_cap must be positive, got %d", c.TotalCap))
	}
	if c.SeedCount < 0 || c.SeedCount > c.TotalCap {
		errs = append(errs, fmt.Errorf("seed_count must be within [0, total_cap], got %d", c.SeedCount))
	}
	if c.FastRate <= 0 || c.SlowRate <= 0 {
		errs = append(errs, errors.New("fast_rate and slow_rate must be positive"))
	}
	if c.RampSeconds <= 0 || c.ScrollRamp <= 0 {
		errs = append(errs, errors.New("ramp_seconds and scroll_ramp must be positive"))
	}
	if c.MaxDelta <= 0 {
		errs = append(errs, fmt.Errorf("max_delta must be positive, got %g", c.MaxDelta))
	}
	if c.SpeedMin <= 0 || c.SpeedMin > c.SpeedMax {
		errs = append(errs, fmt.Errorf("speed range [%g, %g] is invalid", c.SpeedMin, c.SpeedMax))
	}
	if c.JitterMin <= 0 || c.JitterMin > c.JitterMax {
		errs = append(errs, fmt.Errorf("jitter range [%g, %g] is invalid", c.JitterMin, c.JitterMax))
	}
	for name, p := range map[string]float64{
		"seed_complete_chance": c.SeedCompleteChance,
		"seed_fail_chance":     c.SeedFailChance,
		"show_from_chance":     c.ShowFromChance,
		"jitter_chance":        c.JitterChance,
		"fail_chance":          c.FailChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %g", name, p))
		}
	}
	if c.ScrollFast < 0 || c.ScrollCruise < 0 {
		errs = append(errs, errors.New("scroll speeds must not be negative"))
	}
	if c.Geometry.RowHeight <= 0 {
		errs = append(errs, fmt.Errorf("geometry.row_height must be positive, got %g", c.Geometry.RowHeight))
	}
	return errors.Join(errs...)
}
