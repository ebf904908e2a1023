package tracker

import (
	"math"
	"strings"

	"github.com/balkashynov/tally/internal/analytics"
	"github.com/balkashynov/tally/internal/models"
)

// GoalInput describes a goal to create. An empty Category means all categories.
type GoalInput struct {
	Name     string
	Category string
	Hours    float64
	Period   models.Period
}

// CreateGoal validates and stores a goal. Goals are never edited afterwards.
func (t *Tracker) CreateGoal(in GoalInput) (models.Goal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Goal{}, ErrEmptyName
	}
	if math.IsNaN(in.Hours) || math.IsInf(in.Hours, 0) || in.Hours <= 0 {
		return models.Goal{}, ErrInvalidHours
	}
	if !in.Period.Valid() {
		return models.Goal{}, ErrInvalidPeriod
	}

	goal := models.Goal{
		ID:       t.ids.NewID(),
		Name:     name,
		Category: strings.TrimSpace(in.Category),
		Hours:    in.Hours,
		Period:   in.Period,
	}
	t.state.Goals = append(t.state.Goals, goal)
	t.commit()
	return goal, nil
}

// DeleteGoal removes a goal. Deleting an unknown id is not an error.
func (t *Tracker) DeleteGoal(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	goals := t.state.Goals[:0]
	for _, g := range t.state.Goals {
		if g.ID != id {
			goals = append(goals, g)
		}
	}
	t.state.Goals = goals
	t.commit()
}

// GoalProgress evaluates every goal against the archive as of now.
func (t *Tracker) GoalProgress() []analytics.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return analytics.AllGoalProgress(t.state.Goals, t.state.Archive, t.clock.Now())
}
