package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/surge-downloader/dlhist/internal/config"
	"github.com/surge-downloader/dlhist/internal/render"
	"github.com/surge-downloader/dlhist/internal/sim"
	"github.com/surge-downloader/dlhist/internal/state"
	"github.com/surge-downloader/dlhist/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// app is what the root command resolves before any subcommand runs
type app struct {
	options  config.Options
	settings config.Settings
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: utils.Logger()}

	root := &cobra.Command{
		Use:   "dlhist",
		Short: "A browser download history that never stops downloading",
		Long: `dlhist animates an endless, synthetic "Download History" page in the
terminal: a burst of downloads that eases into a trickle, progress bars
that stall and fail, and a page that scrolls itself.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true, // Execute reports them
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			state.CloseDB()
			utils.CloseLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("dlhist {{.Version}} (built %s)\n", BuildTime))
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(a), newSimulateCmd(a), newRunsCmd(a), newVersionCmd())
	return root
}

// setup resolves flags, env and the config file, then opens the log
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	a.options = config.ReadOptions(v)

	a.settings, err = config.LoadWith(a.options)
	if err != nil {
		return err
	}

	if err := config.EnsureDirs(); err != nil {
		return fmt.Errorf("creating config dirs: %w", err)
	}
	logs := config.GetLogsDir()
	a.logger, err = utils.ConfigureLogging(logs, a.settings.Level())
	if err != nil {
		return err
	}
	if err := utils.CleanupLogs(logs, a.settings.LogRetention); err != nil {
		a.logger.Warn("log cleanup failed", "err", err)
	}
	state.Configure(config.GetJournalPath())

	a.logger.Debug("settings loaded",
		"config", a.options.ConfigPath,
		"preset", a.settings.Preset,
		"seed", a.settings.Simulation.Seed,
		"version", Version)
	return nil
}

// build makes a simulation and the palette it is drawn with
func (a *app) build() (*sim.Simulation, render.Palette, error) {
	palette := render.DefaultPalette()
	if err := a.settings.ApplyPalette(&palette); err != nil {
		return nil, palette, err
	}
	return sim.New(a.settings.Simulation, sim.WithLogger(a.logger)), palette, nil
}

// record journals a finished run and trims the journal. Failures are only
// logged.
func (a *app) record(r state.Run) {
	r.Preset = a.settings.Preset
	r.Seed = a.settings.Simulation.Seed
	if err := state.SaveRun(r); err != nil {
		a.logger.Warn("journal write failed", "session", r.ID, "err", err)
		return
	}
	if n, err := state.PruneRuns(a.settings.RunRetention); err != nil {
		a.logger.Warn("journal prune failed", "err", err)
	} else if n > 0 {
		a.logger.Debug("journal pruned", "removed", n)
	}
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
