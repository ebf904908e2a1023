package analytics

import (
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// testLoc is a fixed non-UTC zone so local-midnight bugs show up.
var testLoc = time.FixedZone("UTC-5", -5*60*60)

// wednesday is 2024-03-20 15:00 local; the week began Sunday 2024-03-17.
var wednesday = time.Date(2024, 3, 20, 15, 0, 0, 0, testLoc)

func at(month time.Month, day, hour, min int) time.Time {
	return time.Date(2024, month, day, hour, min, 0, 0, testLoc)
}

func record(id string, d time.Duration, ended time.Time) models.TimeRecord {
	archived := ended
	return models.TimeRecord{
		ID:         id,
		Duration:   d,
		StartedAt:  ended.Add(-d),
		EndedAt:    ended,
		ArchivedAt: &archived,
	}
}

func categorized(id, category string, d time.Duration, ended time.Time) models.TimeRecord {
	r := record(id, d, ended)
	r.Category = category
	return r
}
