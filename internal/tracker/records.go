package tracker

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/balkashynov/tally/internal/analytics"
	"github.com/balkashynov/tally/internal/models"
	"github.com/balkashynov/tally/internal/parser"
)

// Labels are the fields an inbox record receives when it is organized.
type Labels struct {
	Name     string
	Category string
	Summary  string
	FolderID string
}

// ManualEntry is time logged after the fact. Hours and Minutes are read as
// leading decimal numbers, Date accepts the formats of parser.ParseEntryDate.
// An empty FolderID files the entry under no folder.
type ManualEntry struct {
	Name     string
	Category string
	Summary  string
	FolderID string
	Hours    string
	Minutes  string
	Date     string
}

// maxManualMillis keeps the entry duration inside time.Duration.
const maxManualMillis = float64(math.MaxInt64 / int64(time.Millisecond))

// Organize moves an inbox record into the archive with its labels.
// This is the only way out of the inbox and it cannot be undone.
func (t *Tracker) Organize(recordID string, labels Labels) (models.TimeRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := recordIndex(t.state.Inbox, recordID)
	if i < 0 {
		return models.TimeRecord{}, ErrRecordNotFound
	}
	if labels.FolderID != "" && t.folderIndex(labels.FolderID) < 0 {
		return models.TimeRecord{}, ErrFolderNotFound
	}

	rec := t.state.Inbox[i]
	now := t.clock.Now()
	rec.Name = strings.TrimSpace(labels.Name)
	rec.Category = strings.TrimSpace(labels.Category)
	rec.Summary = strings.TrimSpace(labels.Summary)
	rec.FolderID = labels.FolderID
	rec.ArchivedAt = &now

	t.state.Inbox = append(t.state.Inbox[:i], t.state.Inbox[i+1:]...)
	t.state.Archive = append([]models.TimeRecord{rec}, t.state.Archive...)
	t.logger.Debug("organized record", "id", rec.ID, "category", rec.Category)
	t.commit()
	return rec, nil
}

// MoveToFolder files an archived record under folderID, or clears its folder
// when folderID is empty. No other field changes.
func (t *Tracker) MoveToFolder(recordID, folderID string) (models.TimeRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := recordIndex(t.state.Archive, recordID)
	if i < 0 {
		return models.TimeRecord{}, ErrRecordNotFound
	}
	if folderID != "" && t.folderIndex(folderID) < 0 {
		return models.TimeRecord{}, ErrFolderNotFound
	}

	t.state.Archive[i].FolderID = folderID
	t.commit()
	return t.state.Archive[i], nil
}

// AddManualEntry logs time directly into the archive. The record ends at
// local noon of the entry date. The archive is re-sorted newest first.
func (t *Tracker) AddManualEntry(entry ManualEntry) (models.TimeRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	minutes := parser.ParseAmount(entry.Hours)*60 + parser.ParseAmount(entry.Minutes)
	millis := math.Round(minutes * 60000)
	if millis <= 0 {
		return models.TimeRecord{}, ErrNonPositiveDuration
	}
	if millis > maxManualMillis {
		return models.TimeRecord{}, ErrDurationTooLong
	}
	if entry.FolderID != "" && t.folderIndex(entry.FolderID) < 0 {
		return models.TimeRecord{}, ErrFolderNotFound
	}

	now := t.clock.Now()
	day, err := parser.ParseEntryDate(entry.Date, now)
	if err != nil {
		return models.TimeRecord{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	duration := time.Duration(millis) * time.Millisecond
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, day.Location())
	rec := models.TimeRecord{
		ID:         t.ids.NewID(),
		Duration:   duration,
		StartedAt:  noon.Add(-duration),
		EndedAt:    noon,
		Name:       strings.TrimSpace(entry.Name),
		Category:   strings.TrimSpace(entry.Category),
		Summary:    strings.TrimSpace(entry.Summary),
		FolderID:   entry.FolderID,
		ArchivedAt: &now,
		Manual:     true,
	}

	t.state.Archive = append(t.state.Archive, rec)
	analytics.SortByEndedDesc(t.state.Archive)
	t.commit()
	return rec, nil
}

// Search filters the archive by query and the active folder filter.
func (t *Tracker) Search(query string) []models.TimeRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	return analytics.Search(t.state.Archive, analytics.Filter{
		Query:    strings.TrimSpace(query),
		FolderID: t.folderFilter,
	})
}

func recordIndex(records []models.TimeRecord, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
