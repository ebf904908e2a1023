package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for tally",
	Long:  `Display detailed help for all tally commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
████████╗ █████╗ ██╗     ██╗  ██╗   ██╗
╚══██╔══╝██╔══██╗██║     ██║  ╚██╗ ██╔╝
   ██║   ███████║██║     ██║   ╚████╔╝
   ██║   ██╔══██║██║     ██║    ╚██╔╝
   ██║   ██║  ██║███████╗███████╗██║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝

tally - CLI stopwatches + time log

STOPWATCHES:

  start                   Start a new stopwatch
    --no-ui               Skip the live board
  toggle [id]             Pause or resume
  pause [id], resume [id] Only pause / only resume
  stop [id]               Stop and send the time to the inbox
  discard [id]            Throw a stopwatch away
  status                  Show stopwatches and inbox size
  watch                   Live board
    n             New stopwatch
    space         Pause/resume
    s             Stop → inbox
    x             Discard
    ↑/↓           Select
    q             Quit (stopwatches keep running)

  With a single stopwatch running the id can be left out.

RECORDS:

  inbox                   List stopped time waiting to be organized
  organize <id> [label]   Label a record and archive it
    --name, --category, --summary, --folder
    -i, --interactive     Open the form

    Smart syntax:
      #category     Set category (#deep-work → Deep Work)
      @folder       File under a folder
      -- text       Summary

    Example:
      tally organize 0190 "Write report #writing @reports -- first draft"

  add                     Log time after the fact
    --hours, --minutes    Duration, decimals allowed (1.5h)
    --date                yyyy-mm-dd, dd/mm/yyyy, today, yesterday, "3 days ago"
    --name, --category, --summary, --folder

  ls                      List the archive (alias: archive)
    --folder              Only one folder
    --json                JSON output
  search <query>          Search name, category and summary
    --folder, --json
  move <id> [folder]      File a record under a folder
    --clear               Remove it from its folder

FOLDERS AND GOALS:

  folder add|rm|ls        Manage folders
  goal add <name>         Create a goal
    --hours               Target hours
    --period              daily|weekly|monthly
    --category            Only count one category
  goal rm|ls              Delete or list goals

INSIGHTS:

  stats                   Totals, categories, streak, goals
    --json                JSON output
  calendar [yyyy-mm]      Heat-map of a month
    --day                 Records of one day (yyyy-mm-dd, today, yesterday)
  export                  Dump everything as JSON
    -o, --output          Write to a file

  --config-dir            Use another config directory
  version                 Show version
  help                    Show this help

Ids can be shortened to any unique prefix.

`)
}
