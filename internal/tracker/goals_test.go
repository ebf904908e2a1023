package tracker

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/tally/internal/models"
)

func TestCreateGoalValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      GoalInput
		wantErr error
	}{
		{"valid", GoalInput{Name: "Focus", Hours: 2, Period: models.PeriodDaily}, nil},
		{"empty name", GoalInput{Name: " ", Hours: 2, Period: models.PeriodDaily}, ErrEmptyName},
		{"zero hours", GoalInput{Name: "Focus", Hours: 0, Period: models.PeriodDaily}, ErrInvalidHours},
		{"negative hours", GoalInput{Name: "Focus", Hours: -1, Period: models.PeriodDaily}, ErrInvalidHours},
		{"nan hours", GoalInput{Name: "Focus", Hours: math.NaN(), Period: models.PeriodDaily}, ErrInvalidHours},
		{"bad period", GoalInput{Name: "Focus", Hours: 1, Period: "yearly"}, ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _, _ := newTestTracker(t)
			goal, err := tr.CreateGoal(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, tr.Goals())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Focus", goal.Name)
			assert.Len(t, tr.Goals(), 1)
		})
	}
}

func TestDeleteGoalIsUnconditional(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	g, err := tr.CreateGoal(GoalInput{Name: "Focus", Hours: 2, Period: models.PeriodWeekly})
	require.NoError(t, err)

	tr.DeleteGoal("missing")
	assert.Len(t, tr.Goals(), 1)

	tr.DeleteGoal(g.ID)
	assert.Empty(t, tr.Goals())
}

func TestGoalProgressFollowsArchive(t *testing.T) {
	tr, c, _ := newTestTracker(t)
	_, err := tr.CreateGoal(GoalInput{Name: "Deep", Category: "Deep Work", Hours: 2, Period: models.PeriodDaily})
	require.NoError(t, err)

	rec := stopInto(t, tr, c, time.Hour)
	assert.Zero(t, tr.GoalProgress()[0].Fraction)

	_, err = tr.Organize(rec.ID, Labels{Name: "x", Category: "Deep Work"})
	require.NoError(t, err)
	assert.Equal(t, 0.5, tr.GoalProgress()[0].Fraction)

	c.Advance(24 * time.Hour)
	assert.Zero(t, tr.GoalProgress()[0].Fraction)
}
