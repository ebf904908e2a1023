package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the full state as JSON",
	Long: `Dump stopwatches, inbox, archive, folders and goals as JSON, to stdout or a file.

Examples:
  tally export > backup.json
  tally export -o backup.json`,
	Args: cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		snap := a.tracker.Snapshot()

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			return printJSON(snap)
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("💾 Exported %d archived record(s) to %s\n", len(snap.Archive), out)
		return nil
	}),
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
