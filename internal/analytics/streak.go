package analytics

import (
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// dayKey identifies a calendar day independent of clock time.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time, loc *time.Location) dayKey {
	y, m, d := t.In(loc).Date()
	return dayKey{y, m, d}
}

// activeDays returns the set of local days on which at least one record ended.
func activeDays(archive []models.TimeRecord, loc *time.Location) map[dayKey]bool {
	days := make(map[dayKey]bool)
	for _, r := range archive {
		days[keyOf(r.EndedAt, loc)] = true
	}
	return days
}

// Streak counts consecutive days with at least one record, walking back from
// today. Today counts even though it is not over yet; an empty today yields 0.
func Streak(archive []models.TimeRecord, now time.Time) int {
	days := activeDays(archive, now.Location())

	streak := 0
	day := DayStart(now)
	for days[keyOf(day, now.Location())] {
		streak++
		day = time.Date(day.Year(), day.Month(), day.Day()-1, 0, 0, 0, 0, day.Location())
	}
	return streak
}

// DailyAverage divides all tracked time by the number of distinct days that
// have records. It is zero when nothing has been tracked.
func DailyAverage(archive []models.TimeRecord, loc *time.Location) time.Duration {
	days := activeDays(archive, loc)
	if len(days) == 0 {
		return 0
	}

	var total time.Duration
	for _, r := range archive {
		total += r.Duration
	}
	return total / time.Duration(len(days))
}
