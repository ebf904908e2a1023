package tracker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/balkashynov/tally/internal/clock"
	"github.com/balkashynov/tally/internal/models"
)

var testLoc = time.FixedZone("UTC-5", -5*60*60)

// memoryStore keeps the last saved snapshot and counts saves.
type memoryStore struct {
	saved *models.Snapshot
	saves int
	fail  bool
}

func (m *memoryStore) Load() (*models.Snapshot, bool) {
	if m.saved == nil {
		return nil, false
	}
	snap := m.saved.Clone()
	return &snap, true
}

func (m *memoryStore) Save(s models.Snapshot) error {
	m.saves++
	if m.fail {
		return errors.New("disk full")
	}
	m.saved = &s
	return nil
}

// sequentialIDs hands out id-1, id-2, ...
type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestTracker(t *testing.T) (*Tracker, *clock.Manual, *memoryStore) {
	t.Helper()
	c := clock.NewManual(time.Date(2024, 3, 20, 15, 0, 0, 0, testLoc))
	store := &memoryStore{}
	tr := New(Options{Clock: c, IDs: &sequentialIDs{}, Store: store})
	return tr, c, store
}

// stopInto runs a stopwatch for d and returns the resulting inbox record.
func stopInto(t *testing.T, tr *Tracker, c *clock.Manual, d time.Duration) models.TimeRecord {
	t.Helper()
	sw := tr.Start()
	c.Advance(d)
	rec, err := tr.Stop(sw.ID)
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	return rec
}
