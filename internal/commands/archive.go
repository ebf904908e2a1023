package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/models"
	"github.com/balkashynov/tally/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"archive"},
	Short:   "List archived records, newest first",
	Args:    cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return showArchive(cmd, a, "")
	}),
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search archived records by name, category or summary",
	Long: `Search archived records. The query matches name, category and summary
case-insensitively and can be combined with --folder.

Examples:
  tally search report
  tally search standup --folder work --json`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return showArchive(cmd, a, strings.Join(args, " "))
	}),
}

func showArchive(cmd *cobra.Command, a *app, query string) error {
	folderRef, _ := cmd.Flags().GetString("folder")
	if folderRef != "" {
		folder, err := a.tracker.FindFolder(folderRef)
		if err != nil {
			return fmt.Errorf("folder '%s': %w", folderRef, err)
		}
		if err := a.tracker.SetFolderFilter(folder.ID); err != nil {
			return err
		}
	}

	results := a.tracker.Search(query)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		if results == nil {
			results = []models.TimeRecord{}
		}
		return printJSON(results)
	}

	if len(results) == 0 {
		if query != "" {
			fmt.Printf("No records match '%s'\n", query)
		} else {
			fmt.Println("Archive is empty")
		}
		return nil
	}

	names := folderNames(a.tracker.Folders())
	for _, r := range results {
		fmt.Println(formatRecord(r, names))
	}
	fmt.Printf("\n%d record(s)\n", len(results))
	return nil
}

var moveCmd = &cobra.Command{
	Use:   "move <record-id> [folder]",
	Short: "File an archived record under a folder",
	Long: `File an archived record under a folder, or take it out of its folder with --clear.

Examples:
  tally move 0190 work
  tally move 0190 --clear`,
	Args: cobra.RangeArgs(1, 2),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		rec, err := pickRecord(a.tracker.Archive(), args[0])
		if err != nil {
			return err
		}

		clearFolder, _ := cmd.Flags().GetBool("clear")
		var folderID, folderName string
		switch {
		case clearFolder:
		case len(args) == 2:
			folder, err := a.tracker.FindFolder(args[1])
			if err != nil {
				return fmt.Errorf("folder '%s': %w", args[1], err)
			}
			folderID, folderName = folder.ID, folder.Name
		default:
			return fmt.Errorf("pass a folder or --clear")
		}

		if _, err := a.tracker.MoveToFolder(rec.ID, folderID); err != nil {
			return err
		}
		if folderID == "" {
			fmt.Printf("📤 %s is no longer in a folder\n", tui.ShortID(rec.ID))
		} else {
			fmt.Printf("📁 %s moved to %s\n", tui.ShortID(rec.ID), folderName)
		}
		return nil
	}),
}

func init() {
	listCmd.Flags().String("folder", "", "Only records in this folder (name or id)")
	listCmd.Flags().Bool("json", false, "JSON output")
	searchCmd.Flags().String("folder", "", "Only records in this folder (name or id)")
	searchCmd.Flags().Bool("json", false, "JSON output")
	moveCmd.Flags().Bool("clear", false, "Remove the record from its folder")
}
