package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/tui"
)

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new stopwatch",
	Long: `Start a new stopwatch. Opens the live board by default, use --no-ui for a simple start.
Any number of stopwatches can run at once.

Examples:
  tally start          # Start and open the board
  tally start --no-ui  # Start without UI`,
	Args: cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		sw := a.tracker.Start()

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Started stopwatch %s\n", tui.ShortID(sw.ID))
			fmt.Printf("Started at: %s\n", sw.StartTime.Format("15:04:05"))
			return nil
		}
		return tui.RunBoard(a.tracker, a.cfg.TickInterval)
	}),
}

var toggleCmd = &cobra.Command{
	Use:     "toggle [stopwatch-id]",
	Aliases: []string{"pause", "resume"},
	Short:   "Pause a running stopwatch or resume a paused one",
	Long: `Pause a running stopwatch or resume a paused one.
Called as 'pause' or 'resume' it only ever does that one thing.`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		sw, err := pickStopwatch(a.tracker, argOrEmpty(args))
		if err != nil {
			return err
		}

		if msg, skip := toggleNoop(cmd.CalledAs(), sw.Running); skip {
			fmt.Printf("%s %s is already %s\n", msg, tui.ShortID(sw.ID), stateName(sw.Running))
			return nil
		}

		sw, err = a.tracker.Toggle(sw.ID)
		if err != nil {
			return err
		}

		elapsed := tui.FormatClock(a.tracker.ElapsedNow(sw))
		if sw.Running {
			fmt.Printf("▶️  Resumed %s at %s\n", tui.ShortID(sw.ID), elapsed)
		} else {
			fmt.Printf("⏸️  Paused %s at %s\n", tui.ShortID(sw.ID), elapsed)
		}
		return nil
	}),
}

// toggleNoop reports whether the verb asks for the state the stopwatch is
// already in, with the icon to print.
func toggleNoop(verb string, running bool) (string, bool) {
	switch {
	case verb == "pause" && !running:
		return "⏸️ ", true
	case verb == "resume" && running:
		return "▶️ ", true
	}
	return "", false
}

func stateName(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}

var stopCmd = &cobra.Command{
	Use:   "stop [stopwatch-id]",
	Short: "Stop a stopwatch and send its time to the inbox",
	Args:  cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		sw, err := pickStopwatch(a.tracker, argOrEmpty(args))
		if err != nil {
			return err
		}
		rec, err := a.tracker.Stop(sw.ID)
		if err != nil {
			return err
		}

		fmt.Printf("⏹️  Stopped %s after %s\n", tui.ShortID(sw.ID), tui.FormatDuration(rec.Duration))
		fmt.Printf("📥 Inbox record %s. Label it with 'tally organize %s'\n", tui.ShortID(rec.ID), tui.ShortID(rec.ID))
		return nil
	}),
}

var discardCmd = &cobra.Command{
	Use:   "discard [stopwatch-id]",
	Short: "Throw a stopwatch away without recording it",
	Args:  cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		sw, err := pickStopwatch(a.tracker, argOrEmpty(args))
		if err != nil {
			return err
		}
		if err := a.tracker.Discard(sw.ID); err != nil {
			return err
		}
		fmt.Printf("🗑️  Discarded %s (%s)\n", tui.ShortID(sw.ID), tui.FormatClock(a.tracker.ElapsedNow(sw)))
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show running stopwatches and the inbox size",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		sws := a.tracker.Stopwatches()
		if len(sws) == 0 {
			fmt.Println("No stopwatches running")
		}
		for _, sw := range sws {
			state := "▶️  running"
			if !sw.Running {
				state = "⏸️  paused "
			}
			fmt.Printf("%s  %s  %s\n", tui.ShortID(sw.ID), state, tui.FormatClock(a.tracker.ElapsedNow(sw)))
		}

		if n := len(a.tracker.Inbox()); n > 0 {
			fmt.Printf("\n📥 %d record(s) waiting in the inbox ('tally inbox')\n", n)
		}
		return nil
	}),
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the live stopwatch board",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return tui.RunBoard(a.tracker, a.cfg.TickInterval)
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start the stopwatch without the interactive board")
}
