package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"collide3d/internal/config"
	"collide3d/internal/hitlog"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded batch runs",
	Long: `Without arguments, list the most recent runs recorded by 'collide batch
--record'. With a run ID, print that run's results.

Examples:
  collide history
  collide history --limit 5
  collide history 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, err := config.ExpandHome(cfg.DBPath)
	if err != nil {
		return err
	}
	store, err := hitlog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}
		records, err := store.Records(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Run %s\n\n", id)
		fmt.Fprintf(out, "  %-3s %-16s %-16s %8s\n", "#", "Object", "Collider", "Distance")
		fmt.Fprintf(out, "  %-3s %-16s %-16s %8s\n", "-", "------", "--------", "--------")
		for _, r := range records {
			if !r.Hit {
				fmt.Fprintf(out, "  %-3d %-16s\n", r.Query, "(miss)")
				continue
			}
			fmt.Fprintf(out, "  %-3d %-16s %-16s %8.3f\n", r.Query, r.Object, r.Collider, r.Distance)
		}
		return nil
	}

	runs, err := store.Runs(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'collide batch --record' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-16s  %-16s  %s\n", "Run", "Scene", "Date", "Hits")
	fmt.Fprintf(out, "  %-36s  %-16s  %-16s  %s\n", "---", "-----", "----", "----")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-36s  %-16s  %-16s  %d/%d\n",
			r.ID, r.Scene, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Hits, r.Queries)
	}
	return nil
}
