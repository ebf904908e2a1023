package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/tally/internal/models"
)

func TestCalendarLayout(t *testing.T) {
	cal := Calendar(nil, 2024, time.March, testLoc)

	// March 1st 2024 was a Friday.
	assert.Equal(t, 5, cal.Blanks)
	assert.Len(t, cal.Days, 31)
	assert.True(t, at(3, 1, 0, 0).Equal(cal.Days[0].Date))
	assert.True(t, at(3, 31, 0, 0).Equal(cal.Days[30].Date))

	cells := cal.Cells()
	require.Len(t, cells, 36)
	for i := 0; i < 5; i++ {
		assert.Nil(t, cells[i])
	}
	assert.Equal(t, 1, cells[5].Date.Day())
}

func TestCalendarLeapFebruary(t *testing.T) {
	cal := Calendar(nil, 2024, time.February, testLoc)

	assert.Len(t, cal.Days, 29)
	assert.Equal(t, 4, cal.Blanks)
}

func TestCalendarTotalsAndIntensity(t *testing.T) {
	archive := []models.TimeRecord{
		record("a", 2*time.Hour, at(3, 10, 9, 0)),
		record("b", 3*time.Hour, at(3, 11, 9, 0)),
		record("c", 2*time.Hour, at(3, 11, 23, 59)),
		record("d", time.Hour, at(3, 12, 0, 0)),
		record("feb", 9*time.Hour, time.Date(2024, 2, 29, 23, 0, 0, 0, testLoc)),
	}

	cal := Calendar(archive, 2024, time.March, testLoc)

	assert.Equal(t, 2*time.Hour, cal.Days[9].Total)
	assert.Equal(t, 0.5, cal.Days[9].Intensity)
	assert.Equal(t, 5*time.Hour, cal.Days[10].Total)
	assert.Equal(t, 1.0, cal.Days[10].Intensity)
	assert.Equal(t, time.Hour, cal.Days[11].Total)
	assert.Zero(t, cal.Days[0].Total)
	assert.Zero(t, cal.Days[0].Intensity)
}

func TestRecordsOnDayEdges(t *testing.T) {
	lastMilli := time.Date(2024, 3, 11, 23, 59, 59, int(999*time.Millisecond), testLoc)
	archive := []models.TimeRecord{
		record("before", time.Hour, lastMilli.Add(-24*time.Hour)),
		record("midnight", time.Hour, at(3, 11, 0, 0)),
		record("noon", time.Hour, at(3, 11, 12, 0)),
		record("last", time.Hour, lastMilli),
		record("next", time.Hour, at(3, 12, 0, 0)),
	}

	got := RecordsOn(archive, at(3, 11, 15, 30), testLoc)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"last", "noon", "midnight"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "before", archive[0].ID)
}

func TestRecordsOnUsesLocalDay(t *testing.T) {
	// 02:00 UTC on the 12th is still the 11th at UTC-5.
	archive := []models.TimeRecord{record("late", time.Hour, time.Date(2024, 3, 12, 2, 0, 0, 0, time.UTC))}

	assert.Len(t, RecordsOn(archive, at(3, 11, 9, 0), testLoc), 1)
	assert.Empty(t, RecordsOn(archive, at(3, 12, 9, 0), testLoc))
}

func TestRecordsOnMatchesCalendarTotals(t *testing.T) {
	archive := []models.TimeRecord{
		record("a", 2*time.Hour, at(3, 11, 9, 0)),
		record("b", 30*time.Minute, at(3, 11, 23, 59)),
	}
	cal := Calendar(archive, 2024, time.March, testLoc)

	var total time.Duration
	for _, r := range RecordsOn(archive, cal.Days[10].Date, testLoc) {
		total += r.Duration
	}
	assert.Equal(t, cal.Days[10].Total, total)
}
