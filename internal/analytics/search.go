package analytics

import (
	"sort"
	"strings"

	"github.com/balkashynov/tally/internal/models"
)

// Filter narrows the archive. Empty fields match everything.
type Filter struct {
	Query    string
	FolderID string
}

// Matches reports whether r passes both the text query and the folder filter.
// The query is a case-insensitive substring of name, category or summary.
func (f Filter) Matches(r models.TimeRecord) bool {
	if f.FolderID != "" && r.FolderID != f.FolderID {
		return false
	}
	if f.Query == "" {
		return true
	}

	q := strings.ToLower(f.Query)
	for _, field := range []string{r.Name, r.Category, r.Summary} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Search returns the matching records, most recently ended first.
func Search(archive []models.TimeRecord, f Filter) []models.TimeRecord {
	results := make([]models.TimeRecord, 0, len(archive))
	for _, r := range archive {
		if f.Matches(r) {
			results = append(results, r)
		}
	}
	SortByEndedDesc(results)
	return results
}

// SortByEndedDesc orders records newest first, keeping ties stable.
func SortByEndedDesc(records []models.TimeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EndedAt.After(records[j].EndedAt)
	})
}
