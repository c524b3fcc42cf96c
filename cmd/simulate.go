package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/surge-downloader/dlhist/internal/render"
	"github.com/surge-downloader/dlhist/internal/state"
	"github.com/surge-downloader/dlhist/internal/tui"
)

const defaultSummaryWidth = 80

func newSimulateCmd(a *app) *cobra.Command {
	var (
		duration      time.Duration
		fps           int
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation without a terminal and print a summary",
		Long: `simulate drives the simulation with synthetic frame timestamps for a
fixed simulated duration. Every frame is drawn to an in-memory surface, so
the run exercises the same code path as the terminal host without sleeping.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if duration <= 0 || fps <= 0 {
				return errors.New("--duration and --fps must be positive")
			}
			if fps > tui.MaxFPS {
				return fmt.Errorf("--fps must be at most %d, got %d", tui.MaxFPS, fps)
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("window size must be positive, got %dx%d", width, height)
			}

			s, palette, err := a.build()
			if err != nil {
				return err
			}
			r := render.New(s.Config().Geometry, palette)

			start := time.Now()
			rep := tui.Simulate(s, r, duration, fps, float64(width), float64(height))
			rep.Preset = a.settings.Preset
			a.logger.Info("headless run finished",
				"session", rep.Session,
				"frames", rep.Frames,
				"created", rep.Created,
				"took", time.Since(start))

			a.record(state.Run{
				ID:          rep.Session,
				Mode:        state.ModeHeadless,
				StartedAt:   start,
				Simulated:   duration.Seconds(),
				Frames:      rep.Frames,
				Created:     rep.Created,
				Downloading: rep.Stats.Downloading,
				Complete:    rep.Stats.Complete,
				Failed:      rep.Stats.Failed,
				MaxCards:    rep.MaxCardsDrawn,
			})

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(rep, summaryWidth()))
			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "Simulated time to run")
	cmd.Flags().IntVar(&fps, "fps", 60, "Synthetic frames per simulated second")
	cmd.Flags().IntVar(&width, "width", 1280, "Window width in pixels")
	cmd.Flags().IntVar(&height, "height", 800, "Window height in pixels")
	return cmd
}

// summaryWidth fits the summary to the terminal when there is one
func summaryWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultSummaryWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultSummaryWidth
	}
	return min(w, 120)
}
