package models

import "time"

// TimeRecord is a finished, measured interval. Records without ArchivedAt
// live in the inbox; archived records carry their labels and folder.
type TimeRecord struct {
	ID        string        `json:"id"`
	Duration  time.Duration `json:"duration"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`

	// Labels, set when the record is organized or entered manually
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Summary    string     `json:"summary"`
	FolderID   string     `json:"folder_id"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	Manual     bool       `json:"manual,omitempty"`
}

// IsArchived reports whether the record has been filed.
func (r TimeRecord) IsArchived() bool {
	return r.ArchivedAt != nil
}
