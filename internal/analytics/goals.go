package analytics

import (
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// Progress is a goal evaluated against the archive.
type Progress struct {
	Goal models.Goal `json:"goal"`
	// Hours is the unclamped tracked time in the goal's current period.
	Hours float64 `json:"hours"`
	// Fraction is Hours/Goal.Hours capped at 1.
	Fraction float64 `json:"fraction"`
}

// Done reports whether the target has been reached.
func (p Progress) Done() bool {
	return p.Fraction >= 1
}

// GoalProgress sums the matching records of the goal's current period.
// A goal with a category only counts records of exactly that category.
func GoalProgress(goal models.Goal, archive []models.TimeRecord, now time.Time) Progress {
	start := WindowStart(goal.Period, now)

	var total time.Duration
	for _, r := range archive {
		if r.EndedAt.Before(start) {
			continue
		}
		if goal.Category != "" && r.Category != goal.Category {
			continue
		}
		total += r.Duration
	}

	p := Progress{Goal: goal, Hours: Hours(total)}
	if goal.Hours > 0 {
		p.Fraction = p.Hours / goal.Hours
		if p.Fraction > 1 {
			p.Fraction = 1
		}
	}
	return p
}

// AllGoalProgress evaluates every goal in order.
func AllGoalProgress(goals []models.Goal, archive []models.TimeRecord, now time.Time) []Progress {
	progress := make([]Progress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, GoalProgress(g, archive, now))
	}
	return progress
}
