package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options are the command-line level settings. Each can come from a flag
// or from a DLHIST_* environment variable; flags win.
type Options struct {
	ConfigPath string
	Preset     string
	LogLevel   string
	Seed       uint64
}

// AddFlags registers the persistent flags on fs
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to config file (default "+DefaultConfigPath()+")")
	fs.String("preset", "", "Look and pacing preset: chrome, compact")
	fs.Uint64("seed", 0, "Random seed; 0 keeps the config file's seed or seeds from the clock")
	fs.String("log-level", "", "Log level: debug, info, warn, error")
}

// NewViper binds the flags in fs and the DLHIST_* environment
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("DLHIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{"config", "preset", "seed", "log-level"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ReadOptions resolves Options from v
func ReadOptions(v *viper.Viper) Options {
	o := Options{
		ConfigPath: v.GetString("config"),
		Preset:     v.GetString("preset"),
		LogLevel:   v.GetString("log-level"),
		Seed:       v.GetUint64("seed"),
	}
	if o.ConfigPath == "" {
		o.ConfigPath = DefaultConfigPath()
	}
	return o
}

// LoadWith loads the config file named by o and applies its overrides
func LoadWith(o Options) (Settings, error) {
	s, err := Load(o.ConfigPath, o.Preset)
	if err != nil {
		return Settings{}, err
	}
	if o.Seed != 0 {
		s.Simulation.Seed = o.Seed
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
		if err := s.Validate(); err != nil {
			return Settings{}, err
		}
	}
	return s, nil
}
