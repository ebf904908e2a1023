package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/tally/internal/models"
)

func TestWindowStart(t *testing.T) {
	tests := []struct {
		name   string
		period models.Period
		now    time.Time
		want   time.Time
	}{
		{"daily", models.PeriodDaily, wednesday, at(3, 20, 0, 0)},
		{"weekly goes back to sunday", models.PeriodWeekly, wednesday, at(3, 17, 0, 0)},
		{"weekly on a sunday is that sunday", models.PeriodWeekly, at(3, 17, 9, 0), at(3, 17, 0, 0)},
		{"weekly crossing a month", models.PeriodWeekly, at(3, 2, 10, 0), time.Date(2024, 2, 25, 0, 0, 0, 0, testLoc)},
		{"monthly", models.PeriodMonthly, wednesday, at(3, 1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowStart(tt.period, tt.now)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestTotalsNinetyMinutesNow(t *testing.T) {
	archive := []models.TimeRecord{record("r1", 5400000*time.Millisecond, wednesday)}

	totals := ComputeTotals(archive, wednesday)

	assert.Equal(t, 1.5, RoundHours(totals.Today))
	assert.Equal(t, 1.5, RoundHours(totals.Week))
	assert.Equal(t, 1.5, RoundHours(totals.Month))
}

func TestTotalsWindowBoundaries(t *testing.T) {
	archive := []models.TimeRecord{
		record("midnight", time.Hour, at(3, 20, 0, 0)),
		record("just-before", time.Hour, at(3, 20, 0, 0).Add(-time.Nanosecond)),
		record("sunday", 2*time.Hour, at(3, 17, 8, 0)),
		record("saturday", 4*time.Hour, at(3, 16, 8, 0)),
		record("last-month", 8*time.Hour, time.Date(2024, 2, 29, 12, 0, 0, 0, testLoc)),
	}

	totals := ComputeTotals(archive, wednesday)

	assert.Equal(t, time.Hour, totals.Today)
	assert.Equal(t, 4*time.Hour, totals.Week)
	assert.Equal(t, 8*time.Hour, totals.Month)
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 1.5, RoundHours(90*time.Minute))
	assert.Equal(t, 0.1, RoundHours(6*time.Minute))
	assert.Equal(t, 0.0, RoundHours(2*time.Minute))
	assert.Equal(t, 2.0, RoundHours(2*time.Hour+time.Minute))
}
