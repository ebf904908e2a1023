package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/analytics"
	"github.com/balkashynov/tally/internal/parser"
	"github.com/balkashynov/tally/internal/tracker"
	"github.com/balkashynov/tally/internal/tui"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage time goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a goal",
	Long: `Create a goal: a number of hours per day, week or month, optionally for one category.

Examples:
  tally goal add "Focus time" --hours 20 --period weekly --category deep-work
  tally goal add "Any work" --hours 4 --period daily`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		rawHours, _ := cmd.Flags().GetString("hours")
		rawPeriod, _ := cmd.Flags().GetString("period")
		category, _ := cmd.Flags().GetString("category")

		hours, err := strconv.ParseFloat(strings.TrimSpace(rawHours), 64)
		if err != nil {
			return tracker.ErrInvalidHours
		}
		period, err := parser.ParsePeriod(rawPeriod)
		if err != nil {
			return err
		}
		if category != "" {
			category = parser.NormalizeCategory(category)
		}

		goal, err := a.tracker.CreateGoal(tracker.GoalInput{
			Name:     strings.Join(args, " "),
			Category: category,
			Hours:    hours,
			Period:   period,
		})
		if err != nil {
			return err
		}
		fmt.Printf("🎯 Goal \"%s\": %.1fh %s - ID: %s\n", goal.Name, goal.Hours, goal.Period, tui.ShortID(goal.ID))
		return nil
	}),
}

var goalRmCmd = &cobra.Command{
	Use:   "rm <goal-id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		goals := a.tracker.Goals()
		ids := make([]string, len(goals))
		for i, g := range goals {
			ids[i] = g.ID
		}
		id, err := tracker.ResolveID(args[0], ids, fmt.Errorf("goal '%s' not found", args[0]))
		if err != nil {
			return err
		}
		a.tracker.DeleteGoal(id)
		fmt.Printf("🗑️  Deleted goal %s\n", tui.ShortID(id))
		return nil
	}),
}

var goalLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show goals and their progress",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		progress := a.tracker.GoalProgress()
		if len(progress) == 0 {
			fmt.Println("No goals yet. Create one with 'tally goal add'")
			return nil
		}
		for _, p := range progress {
			printProgress(p)
		}
		return nil
	}),
}

func printProgress(p analytics.Progress) {
	scope := "all categories"
	if p.Goal.Category != "" {
		scope = p.Goal.Category
	}
	mark := "  "
	if p.Done() {
		mark = "✅"
	}
	fmt.Printf("%s %s  %s (%s, %s)\n", mark, tui.ShortID(p.Goal.ID), p.Goal.Name, p.Goal.Period, scope)
	fmt.Printf("   %s %.1f / %.1fh\n", tui.RenderProgressBar(p.Fraction, 24), p.Hours, p.Goal.Hours)
}

func init() {
	goalAddCmd.Flags().String("hours", "", "Target hours per period")
	goalAddCmd.Flags().String("period", "weekly", "daily, weekly or monthly")
	goalAddCmd.Flags().String("category", "", "Only count this category")
	_ = goalAddCmd.MarkFlagRequired("hours")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalRmCmd)
	goalCmd.AddCommand(goalLsCmd)
}
