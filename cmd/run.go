package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/surge-downloader/dlhist/internal/state"
	"github.com/surge-downloader/dlhist/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal; use 'dlhist simulate' for a headless run")

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the animation in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}
}

func (a *app) runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	s, palette, err := a.build()
	if err != nil {
		return err
	}

	var sessions int
	m := tui.NewRootModel(s, palette, tui.WithSessionEnd(func(sum tui.SessionSummary) {
		sessions++
		a.record(state.Run{
			ID:          sum.Session,
			Mode:        state.ModeTerminal,
			StartedAt:   sum.Started,
			Simulated:   sum.Elapsed,
			Frames:      sum.Frames,
			Created:     sum.Created,
			Downloading: sum.Stats.Downloading,
			Complete:    sum.Stats.Complete,
			Failed:      sum.Stats.Failed,
			MaxCards:    sum.MaxCards,
		})
	}))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	// quit key ends the session itself; interrupts and kills do not
	if fm, ok := final.(tui.RootModel); ok {
		fm.EndSession()
	}
	a.logger.Info("terminal host exited", "sessions", sessions, "last", s.Session(), "created", s.Created())
	return nil
}
