package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/surge-downloader/dlhist/internal/render"
	"github.com/surge-downloader/dlhist/internal/sim"
)

const (
	DefaultLogRetention = 5
	DefaultRunRetention = 50
)

// Settings is the contents of config.yaml. Omitted keys keep the values
// of the selected preset.
type Settings struct {
	Preset       string     `yaml:"preset"`
	LogLevel     string     `yaml:"log_level"`
	LogRetention int        `yaml:"log_retention"`
	RunRetention int        `yaml:"run_retention"` // journal rows kept
	Simulation   sim.Config `yaml:"simulation"`

	// Palette maps a render palette role to a hex colour, e.g.
	// card: "#2e3136"
	Palette map[string]string `yaml:"palette,omitempty"`
}

// Defaults returns the settings for a preset with nothing overridden
func Defaults(preset string) (Settings, error) {
	cfg, err := sim.PresetConfig(preset)
	if err != nil {
		return Settings{}, err
	}
	if preset == "" {
		preset = sim.PresetChrome
	}
	return Settings{
		Preset:       preset,
		LogLevel:     "info",
		LogRetention: DefaultLogRetention,
		RunRetention: DefaultRunRetention,
		Simulation:   cfg,
	}, nil
}

// Load reads path over the defaults of a preset. A non-empty preset
// argument wins over the file's preset key. A missing file is not an
// error.
func Load(path, preset string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("reading config: %w", err)
	}

	// the preset decides the base, so find it first
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if preset == "" {
		preset = head.Preset
	}

	s, err := Defaults(preset)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.Preset, _ = normalizePreset(preset)

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

func normalizePreset(p string) (string, bool) {
	if p == "" {
		return sim.PresetChrome, true
	}
	return p, p == sim.PresetChrome || p == sim.PresetCompact
}

// Save writes s as YAML, creating the parent directory
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the simulation knobs, the log level and every palette
// override
func (s Settings) Validate() error {
	var errs []error
	if _, ok := normalizePreset(s.Preset); !ok {
		errs = append(errs, fmt.Errorf("unknown preset %q", s.Preset))
	}
	if err := s.Simulation.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if s.LogRetention < 0 {
		errs = append(errs, fmt.Errorf("log_retention must not be negative, got %d", s.LogRetention))
	}
	if s.RunRetention < 0 {
		errs = append(errs, fmt.Errorf("run_retention must not be negative, got %d", s.RunRetention))
	}
	p := render.DefaultPalette()
	if err := s.ApplyPalette(&p); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level is the parsed log level, info when unset
func (s Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ApplyPalette writes the palette overrides into p
func (s Settings) ApplyPalette(p *render.Palette) error {
	roles := make([]string, 0, len(s.Palette))
	for role := range s.Palette {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	var errs []error
	for _, role := range roles {
		c, err := ParseHex(s.Palette[role])
		if err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", role, err))
			continue
		}
		if err := p.Set(role, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque colour
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
