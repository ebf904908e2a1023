package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/analytics"
	"github.com/balkashynov/tally/internal/parser"
	"github.com/balkashynov/tally/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals, categories, streak and goals",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		summary := a.tracker.Summary()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printJSON(summary)
		}

		t := summary.Totals
		fmt.Println("📊 Totals")
		fmt.Printf("   Today       %5.1fh\n", analytics.RoundHours(t.Today))
		fmt.Printf("   This week   %5.1fh\n", analytics.RoundHours(t.Week))
		fmt.Printf("   This month  %5.1fh\n", analytics.RoundHours(t.Month))
		fmt.Printf("   All time    %5.1fh\n", analytics.RoundHours(summary.Total))
		fmt.Println()

		fmt.Printf("🔥 Streak: %d day(s)   ⌀ %.1fh per active day   %d record(s)\n",
			summary.Streak, analytics.RoundHours(summary.DailyAverage), summary.Records)

		if len(summary.Categories) > 0 {
			fmt.Println("\n🏷️  Categories this month")
			for _, c := range summary.Categories {
				fmt.Printf("   %-20s %5.1fh\n", c.Name, c.Hours)
			}
		}

		if len(summary.Goals) > 0 {
			fmt.Println("\n🎯 Goals")
			for _, p := range summary.Goals {
				printProgress(p)
			}
		}
		return nil
	}),
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [yyyy-mm]",
	Short: "Show a month as a heat-map of tracked time",
	Long: `Show a month as a heat-map of tracked time, or the records of one day with --day.

Examples:
  tally calendar
  tally calendar 2024-03
  tally calendar --day 2024-03-15
  tally calendar --day yesterday`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		now := a.tracker.Now()

		if dayRef, _ := cmd.Flags().GetString("day"); dayRef != "" {
			day, err := parser.ParseEntryDate(dayRef, now)
			if err != nil {
				return err
			}
			return showDay(a, day)
		}
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month '%s'. Use: yyyy-mm", args[0])
			}
			year, month = t.Year(), t.Month()
		}

		cal := a.tracker.Calendar(year, month)
		fmt.Println(tui.RenderCalendar(cal))

		var total time.Duration
		active := 0
		for _, d := range cal.Days {
			total += d.Total
			if d.Total > 0 {
				active++
			}
		}
		fmt.Printf("\n%s over %d active day(s)\n", tui.FormatDuration(total), active)
		return nil
	}),
}

// showDay prints the records that ended on one local day.
func showDay(a *app, day time.Time) error {
	records := a.tracker.RecordsOn(day)
	fmt.Printf("📅 %s\n\n", day.Format("Monday, Jan 02 2006"))
	if len(records) == 0 {
		fmt.Println("No records on this day")
		return nil
	}

	names := folderNames(a.tracker.Folders())
	var total time.Duration
	for _, r := range records {
		fmt.Println(formatRecord(r, names))
		total += r.Duration
	}
	fmt.Printf("\n%d record(s), %s\n", len(records), tui.FormatDuration(total))
	return nil
}

func init() {
	statsCmd.Flags().Bool("json", false, "JSON output")
	calendarCmd.Flags().String("day", "", "List the records of one day (yyyy-mm-dd, dd/mm/yyyy, today, yesterday)")
}
