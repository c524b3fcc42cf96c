package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/surge-downloader/dlhist/internal/state"
)

func newRunsCmd(a *app) *cobra.Command {
	var (
		jsonOutput bool
		limit      int
		clearAll   bool
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent runs",
		Long:  `List the run journal: one row per finished terminal session or headless run, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if clearAll {
				n, err := state.ClearRuns()
				if err != nil {
					return err
				}
				a.logger.Info("journal cleared", "removed", n)
				fmt.Fprintf(out, "Removed %d runs.\n", n)
				return nil
			}

			runs, err := state.ListRuns(limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				if runs == nil {
					runs = []state.Run{}
				}
				data, err := json.MarshalIndent(runs, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SESSION\tMODE\tPRESET\tSTARTED\tSIMULATED\tCREATED\tDONE\tFAILED")
			fmt.Fprintln(w, "-------\t----\t------\t-------\t---------\t-------\t----\t------")
			for _, r := range runs {
				id := r.ID
				if len(id) > 8 {
					id = id[:8]
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1fs\t%s\t%s\t%s\n",
					id, r.Mode, r.Preset, humanize.Time(r.StartedAt), r.Simulated,
					humanize.Comma(int64(r.Created)), humanize.Comma(int64(r.Complete)), humanize.Comma(int64(r.Failed)))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&limit, "limit", 20, "Show at most this many runs; 0 shows all")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete every recorded run")
	return cmd
}
