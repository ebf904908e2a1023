package models

import "time"

// Snapshot is the complete persisted state of the tracker.
type Snapshot struct {
	Stopwatches []Stopwatch  `json:"stopwatches"`
	Inbox       []TimeRecord `json:"inbox"`
	Archive     []TimeRecord `json:"archive"`
	Folders     []Folder     `json:"folders"`
	Goals       []Goal       `json:"goals"`
}

// Clone returns a copy whose slices can be mutated without touching s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Stopwatches: append([]Stopwatch{}, s.Stopwatches...),
		Inbox:       append([]TimeRecord{}, s.Inbox...),
		Archive:     append([]TimeRecord{}, s.Archive...),
		Folders:     append([]Folder{}, s.Folders...),
		Goals:       append([]Goal{}, s.Goals...),
	}
}

// StateBlob is a single keyed JSON document in the key-value table.
type StateBlob struct {
	Key       string    `gorm:"primarykey" json:"key"`
	Data      string    `gorm:"not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
