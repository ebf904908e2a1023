package analytics

import (
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// Summary bundles the figures shown on the statistics screen.
type Summary struct {
	Totals       Totals          `json:"totals"`
	Total        time.Duration   `json:"total"`
	Categories   []CategoryTotal `json:"categories"`
	Streak       int             `json:"streak"`
	DailyAverage time.Duration   `json:"daily_average"`
	Goals        []Progress      `json:"goals"`
	Records      int             `json:"records"`
}

// Summarize computes every statistic for the archive as of now.
func Summarize(archive []models.TimeRecord, goals []models.Goal, now time.Time) Summary {
	return Summary{
		Totals:       ComputeTotals(archive, now),
		Total:        TotalSince(archive, time.Time{}),
		Categories:   CategoryBreakdown(archive, now),
		Streak:       Streak(archive, now),
		DailyAverage: DailyAverage(archive, now.Location()),
		Goals:        AllGoalProgress(goals, archive, now),
		Records:      len(archive),
	}
}
