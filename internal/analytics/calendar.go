package analytics

import (
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// FullIntensity is the daily total rendered at maximum heat.
const FullIntensity = 4 * time.Hour

// CalendarDay is one concrete date of a calendar month.
type CalendarDay struct {
	Date      time.Time     `json:"date"`
	Total     time.Duration `json:"total"`
	Intensity float64       `json:"intensity"`
}

// CalendarMonth is a month laid out for a Sunday-first grid.
type CalendarMonth struct {
	Year   int           `json:"year"`
	Month  time.Month    `json:"month"`
	Blanks int           `json:"blanks"`
	Days   []CalendarDay `json:"days"`
}

// Cells returns the grid cells in order, nil for the leading blanks.
func (c CalendarMonth) Cells() []*CalendarDay {
	cells := make([]*CalendarDay, c.Blanks, c.Blanks+len(c.Days))
	for i := range c.Days {
		cells = append(cells, &c.Days[i])
	}
	return cells
}

// Calendar aggregates the archive per day of the given month in loc.
// Blanks is the weekday index (Sunday = 0) of the first of the month.
func Calendar(archive []models.TimeRecord, year int, month time.Month, loc *time.Location) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	cal := CalendarMonth{
		Year:   year,
		Month:  month,
		Blanks: int(first.Weekday()),
		Days:   make([]CalendarDay, daysInMonth),
	}

	for i := range cal.Days {
		start, end := dayWindow(time.Date(year, month, i+1, 0, 0, 0, 0, loc), loc)

		var total time.Duration
		for _, r := range archive {
			if inWindow(r.EndedAt, start, end) {
				total += r.Duration
			}
		}

		intensity := float64(total) / float64(FullIntensity)
		if intensity > 1 {
			intensity = 1
		}
		cal.Days[i] = CalendarDay{Date: start, Total: total, Intensity: intensity}
	}
	return cal
}

// dayWindow returns local midnight of day and of the following day in loc.
func dayWindow(day time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// RecordsOn returns the records that ended on the local calendar day of day,
// newest first. The archive is not modified.
func RecordsOn(archive []models.TimeRecord, day time.Time, loc *time.Location) []models.TimeRecord {
	start, end := dayWindow(day, loc)

	records := []models.TimeRecord{}
	for _, r := range archive {
		if inWindow(r.EndedAt, start, end) {
			records = append(records, r)
		}
	}
	SortByEndedDesc(records)
	return records
}
