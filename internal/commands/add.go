package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/parser"
	"github.com/balkashynov/tally/internal/tracker"
	"github.com/balkashynov/tally/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log time you did not track with a stopwatch",
	Long: `Log time after the fact. The entry goes straight to the archive and ends at
noon of the chosen date.

Date formats: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, "3 days ago".

Examples:
  tally add --hours 1.5 --name "Code review" --category review
  tally add --minutes 45 --date yesterday --name "Planning" --folder work`,
	Args: cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		hours, _ := cmd.Flags().GetString("hours")
		minutes, _ := cmd.Flags().GetString("minutes")
		date, _ := cmd.Flags().GetString("date")
		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		summary, _ := cmd.Flags().GetString("summary")
		folderRef, _ := cmd.Flags().GetString("folder")

		var folderID string
		if folderRef != "" {
			folder, err := a.tracker.FindFolder(folderRef)
			if err != nil {
				return fmt.Errorf("folder '%s': %w", folderRef, err)
			}
			folderID = folder.ID
		}

		if category != "" {
			category = parser.NormalizeCategory(category)
		}
		rec, err := a.tracker.AddManualEntry(tracker.ManualEntry{
			Name:     name,
			Category: category,
			Summary:  summary,
			FolderID: folderID,
			Hours:    hours,
			Minutes:  minutes,
			Date:     date,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged %s on %s - ID: %s\n",
			tui.FormatDuration(rec.Duration), rec.EndedAt.Format("Mon Jan 02"), tui.ShortID(rec.ID))
		return nil
	}),
}

func init() {
	addCmd.Flags().String("hours", "", "Hours, decimals allowed (1.5 = 90 minutes)")
	addCmd.Flags().String("minutes", "", "Minutes, decimals allowed")
	addCmd.Flags().String("date", "", "Date of the work (default today)")
	addCmd.Flags().String("name", "", "Record name")
	addCmd.Flags().String("category", "", "Category")
	addCmd.Flags().String("summary", "", "Short summary")
	addCmd.Flags().String("folder", "", "Folder name or id")
}
