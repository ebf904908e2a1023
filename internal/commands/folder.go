package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/tui"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage folders for archived records",
}

var folderAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a folder",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		folder, err := a.tracker.CreateFolder(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("📁 Created %s - ID: %s\n", swatch(folder.Color, folder.Name), tui.ShortID(folder.ID))
		return nil
	}),
}

var folderRmCmd = &cobra.Command{
	Use:   "rm <folder>",
	Short: "Delete a folder; its records stay in the archive",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		folder, err := a.tracker.FindFolder(args[0])
		if err != nil {
			return err
		}
		if err := a.tracker.DeleteFolder(folder.ID); err != nil {
			return err
		}
		fmt.Printf("🗑️  Deleted folder %s\n", folder.Name)
		return nil
	}),
}

var folderLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List folders",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		folders := a.tracker.Folders()
		if len(folders) == 0 {
			fmt.Println("No folders yet. Create one with 'tally folder add <name>'")
			return nil
		}

		counts := make(map[string]int)
		for _, r := range a.tracker.Archive() {
			counts[r.FolderID]++
		}
		for _, f := range folders {
			fmt.Printf("%s  %s  (%d records)\n", tui.ShortID(f.ID), swatch(f.Color, f.Name), counts[f.ID])
		}
		return nil
	}),
}

// swatch renders text in the folder's color.
func swatch(color, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render("● " + text)
}

func init() {
	folderCmd.AddCommand(folderAddCmd)
	folderCmd.AddCommand(folderRmCmd)
	folderCmd.AddCommand(folderLsCmd)
}
