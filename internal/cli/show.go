package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/ppiankov/gatherdb/internal/cache"
	"github.com/ppiankov/gatherdb/internal/model"
	"github.com/ppiankov/gatherdb/internal/snapshot"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [YYYY-MM-DD ...]",
	Short: "Print stored snapshots",
	Long: `Show loads the snapshot for each given date and prints its records.
With no dates, today's snapshot is shown.

Example:
  gatherdb show
  gatherdb show 2024-06-01 2024-06-02`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	dates := []time.Time{now()}
	if len(args) > 0 {
		dates = dates[:0]
		for _, arg := range args {
			date, err := snapshot.ParseDate(arg)
			if err != nil {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", arg, err)
			}
			dates = append(dates, date)
		}
	}

	cfg := loadConfig()
	store := snapshot.NewStore(cfg.Output.Dir, snapshot.DefaultPrefix, cache.NewMemoryCache(5*time.Minute, 10*time.Minute))
	return showSnapshots(cmd.OutOrStdout(), store, dates)
}

func showSnapshots(out io.Writer, store *snapshot.Store, dates []time.Time) error {
	for i, date := range dates {
		snap, err := store.Load(date)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		printSnapshot(out, store.Path(date), snap)
	}
	return nil
}

func printSnapshot(out io.Writer, path string, snap *model.Snapshot) {
	fmt.Fprintf(out, "%s (%d records)\n", path, snap.Len())
	for _, c := range snap.Categories() {
		recs := snap.Records(c)
		fmt.Fprintf(out, "  %s: %d\n", c, len(recs))
		for _, r := range recs {
			fmt.Fprintf(out, "    x=%g y=%g mapID=%d\n", r.X, r.Y, r.MapID)
		}
	}
}
