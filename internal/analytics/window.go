// Package analytics derives every reporting figure from the archive.
//
// Nothing here keeps state: each function takes the archive (and the clock
// reading where a window is involved) and recomputes from scratch, so the
// figures can never drift from the records they describe. All day, week and
// month boundaries are local midnights in the location of the supplied time.
package analytics

import (
	"math"
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// DayStart returns local midnight of the day containing t.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WindowStart returns the inclusive lower bound of the period containing now.
// Weeks start on Sunday.
func WindowStart(period models.Period, now time.Time) time.Time {
	y, m, d := now.Date()
	switch period {
	case models.PeriodWeekly:
		return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	case models.PeriodMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}
}

// TotalSince sums the durations of records ending at or after start.
func TotalSince(archive []models.TimeRecord, start time.Time) time.Duration {
	var total time.Duration
	for _, r := range archive {
		if !r.EndedAt.Before(start) {
			total += r.Duration
		}
	}
	return total
}

// Totals holds the tracked time of the current day, week and month.
type Totals struct {
	Today time.Duration `json:"today"`
	Week  time.Duration `json:"week"`
	Month time.Duration `json:"month"`
}

// ComputeTotals returns the today/week/month totals as of now.
func ComputeTotals(archive []models.TimeRecord, now time.Time) Totals {
	return Totals{
		Today: TotalSince(archive, WindowStart(models.PeriodDaily, now)),
		Week:  TotalSince(archive, WindowStart(models.PeriodWeekly, now)),
		Month: TotalSince(archive, WindowStart(models.PeriodMonthly, now)),
	}
}

// Hours converts d to fractional hours without rounding.
func Hours(d time.Duration) float64 {
	return d.Hours()
}

// RoundHours converts d to hours rounded half away from zero at one decimal.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*10) / 10
}
