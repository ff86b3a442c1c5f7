package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/gatherdb/internal/cache"
	"github.com/ppiankov/gatherdb/internal/model"
	"github.com/ppiankov/gatherdb/internal/snapshot"
	"github.com/spf13/cobra"
)

// now is replaced in tests
var now = time.Now

// updateCmd writes today's snapshot (same as running gatherdb with no arguments)
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Write today's snapshot",
	Long: `Build today's snapshot and write it to database_<YYYY-MM-DD>.json
in the output directory. An existing file for the same day is overwritten.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	c := cache.NewMemoryCache(time.Minute, 10*time.Minute)
	return writeDaily(cmd.OutOrStdout(), loadConfig(), now(), c)
}

// writeDaily saves the daily snapshot and reads it back through the store,
// which serves the re-read from the cache filled by Save.
func writeDaily(out io.Writer, cfg model.Config, date time.Time, c cache.Cache) error {
	store := snapshot.NewStore(cfg.Output.Dir, snapshot.DefaultPrefix, c)

	if verbose {
		fmt.Fprintf(os.Stderr, "Writing snapshot: %s\n", store.Path(date))
	}

	snap := snapshot.Daily()
	path, err := store.Save(date, snap)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	written, err := store.Load(date)
	if err != nil {
		return fmt.Errorf("verify snapshot: %w", err)
	}
	if written.Len() != snap.Len() {
		return fmt.Errorf("verify snapshot: wrote %d records, read back %d", snap.Len(), written.Len())
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote %d records in %d categories\n", written.Len(), len(written.Categories()))
	}

	fmt.Fprintf(out, "Database updated: %s\n", path)
	return nil
}
