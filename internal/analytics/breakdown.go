package analytics

import (
	"sort"
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// CategoryTotal is one row of the monthly category breakdown.
type CategoryTotal struct {
	Name     string        `json:"name"`
	Hours    float64       `json:"hours"`
	Duration time.Duration `json:"duration"`
}

// CategoryBreakdown groups this month's categorized records by category,
// largest first. Ties keep the order in which categories were first seen.
func CategoryBreakdown(archive []models.TimeRecord, now time.Time) []CategoryTotal {
	monthStart := WindowStart(models.PeriodMonthly, now)

	sums := make(map[string]time.Duration)
	var order []string
	for _, r := range archive {
		if r.Category == "" || r.EndedAt.Before(monthStart) {
			continue
		}
		if _, seen := sums[r.Category]; !seen {
			order = append(order, r.Category)
		}
		sums[r.Category] += r.Duration
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, CategoryTotal{
			Name:     name,
			Hours:    RoundHours(sums[name]),
			Duration: sums[name],
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Duration > breakdown[j].Duration
	})
	return breakdown
}
