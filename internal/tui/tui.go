package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/tally/internal/models"
	"github.com/balkashynov/tally/internal/tracker"
)

// RunBoard opens the live stopwatch board until the user quits.
// Stopwatches keep running after the board closes.
func RunBoard(tr *tracker.Tracker, tick time.Duration) error {
	p := tea.NewProgram(NewBoardModel(tr, tick), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(BoardModel); ok {
		for _, rec := range m.Stopped() {
			fmt.Printf("⏹️  %s → inbox record %s\n", FormatDuration(rec.Duration), ShortID(rec.ID))
		}
	}
	if n := len(tr.Stopwatches()); n > 0 {
		fmt.Printf("💡 %d stopwatch(es) still tracked. Use 'tally status' to check them.\n", n)
	}
	return nil
}

// RunOrganize opens the organize form for an inbox record.
func RunOrganize(tr *tracker.Tracker, record models.TimeRecord, prefilled map[string]string) error {
	p := tea.NewProgram(NewOrganizeModel(tr, record, prefilled), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(OrganizeModel); ok {
		if rec := m.Organized(); rec != nil {
			fmt.Printf("✅ Archived \"%s\" (%s)\n", rec.Name, FormatDuration(rec.Duration))
		} else {
			fmt.Println("❌ Organize cancelled, the record stays in the inbox.")
		}
	}
	return nil
}
