package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/parser"
	"github.com/balkashynov/tally/internal/tracker"
	"github.com/balkashynov/tally/internal/tui"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List stopped time waiting to be organized",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		inbox := a.tracker.Inbox()
		if len(inbox) == 0 {
			fmt.Println("📥 Inbox is empty")
			return nil
		}

		var total time.Duration
		for _, r := range inbox {
			fmt.Println(formatRecord(r, nil))
			total += r.Duration
		}
		fmt.Printf("\n%d record(s), %s unorganized\n", len(inbox), tui.FormatDuration(total))
		return nil
	}),
}

var organizeCmd = &cobra.Command{
	Use:   "organize <record-id> [label...]",
	Short: "Label an inbox record and move it to the archive",
	Long: `Label an inbox record and move it to the archive.

Smart syntax in the label:
  #category     Set category (#deep-work becomes "Deep Work")
  @folder       File under a folder (name or id)
  -- text       Everything after " -- " becomes the summary

Flags override the label. Use -i for the interactive form.

Examples:
  tally organize 0190 "Write report #writing @reports -- first draft"
  tally organize 0190 --name "Standup" --category Meetings
  tally organize 0190 -i`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		rec, err := pickRecord(a.tracker.Inbox(), args[0])
		if err != nil {
			return err
		}

		parsed := parser.ParseLabel(strings.Join(args[1:], " "))
		for _, warning := range parsed.Errors {
			fmt.Printf("⚠️  %s\n", warning)
		}

		name, folderRef := parsed.Name, parsed.Folder
		category, summary := parsed.Category, parsed.Summary
		if cmd.Flags().Changed("name") {
			name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("category") {
			raw, _ := cmd.Flags().GetString("category")
			category = parser.NormalizeCategory(raw)
		}
		if cmd.Flags().Changed("summary") {
			summary, _ = cmd.Flags().GetString("summary")
		}
		if cmd.Flags().Changed("folder") {
			folderRef, _ = cmd.Flags().GetString("folder")
		}

		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			return tui.RunOrganize(a.tracker, rec, map[string]string{
				"name":     name,
				"category": category,
				"summary":  summary,
				"folder":   folderRef,
			})
		}

		labels := tracker.Labels{Name: name, Category: category, Summary: summary}
		if folderRef != "" {
			folder, err := a.tracker.FindFolder(folderRef)
			if err != nil {
				return fmt.Errorf("folder '%s': %w", folderRef, err)
			}
			labels.FolderID = folder.ID
		}

		archived, err := a.tracker.Organize(rec.ID, labels)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Archived: %s\n", formatRecord(archived, folderNames(a.tracker.Folders())))
		return nil
	}),
}

func init() {
	organizeCmd.Flags().String("name", "", "Record name")
	organizeCmd.Flags().String("category", "", "Category")
	organizeCmd.Flags().String("summary", "", "Short summary")
	organizeCmd.Flags().String("folder", "", "Folder name or id")
	organizeCmd.Flags().BoolP("interactive", "i", false, "Open the interactive form")
}
