// Package tracker owns the session state: running stopwatches, inbox and
// archive records, folders and goals. Every mutation runs to completion under
// the tracker's lock and is followed by a best-effort save of the whole state.
package tracker

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/balkashynov/tally/internal/analytics"
	"github.com/balkashynov/tally/internal/clock"
	"github.com/balkashynov/tally/internal/models"
)

// Store persists snapshots between sessions.
// Load reports false when nothing usable is stored.
type Store interface {
	Load() (*models.Snapshot, bool)
	Save(snapshot models.Snapshot) error
}

// Options configures a Tracker. Zero values fall back to the system clock,
// UUID ids, no persistence, a silent logger and the default palette.
type Options struct {
	Clock   clock.Clock
	IDs     clock.IDSource
	Store   Store
	Logger  *log.Logger
	Palette []string
}

// Tracker is the single owner of the tracked state.
type Tracker struct {
	mu           sync.Mutex
	state        models.Snapshot
	folderFilter string

	clock   clock.Clock
	ids     clock.IDSource
	store   Store
	logger  *log.Logger
	palette []string
}

// New creates a tracker and loads any previously saved state.
func New(opts Options) *Tracker {
	t := &Tracker{
		clock:   opts.Clock,
		ids:     opts.IDs,
		store:   opts.Store,
		logger:  opts.Logger,
		palette: opts.Palette,
	}
	if t.clock == nil {
		t.clock = clock.System{}
	}
	if t.ids == nil {
		t.ids = clock.UUIDSource{}
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	if len(t.palette) == 0 {
		t.palette = DefaultPalette
	}

	t.state = emptySnapshot()
	if t.store != nil {
		if snap, ok := t.store.Load(); ok {
			t.state = normalize(*snap)
			t.logger.Debug("loaded state",
				"stopwatches", len(t.state.Stopwatches),
				"inbox", len(t.state.Inbox),
				"archive", len(t.state.Archive))
		} else {
			t.logger.Debug("no saved state, starting empty")
		}
	}
	return t
}

func emptySnapshot() models.Snapshot {
	return models.Snapshot{
		Stopwatches: []models.Stopwatch{},
		Inbox:       []models.TimeRecord{},
		Archive:     []models.TimeRecord{},
		Folders:     []models.Folder{},
		Goals:       []models.Goal{},
	}
}

// normalize replaces nil collections from older or hand-edited snapshots.
func normalize(s models.Snapshot) models.Snapshot {
	return s.Clone()
}

// commit saves the current state. Failures are logged and otherwise ignored:
// the in-memory state stays authoritative for the session.
// Callers must hold t.mu.
func (t *Tracker) commit() {
	if t.store == nil {
		return
	}
	if err := t.store.Save(t.state.Clone()); err != nil {
		t.logger.Warn("failed to save state", "err", err)
	}
}

// Now returns the tracker's clock reading.
func (t *Tracker) Now() time.Time {
	return t.clock.Now()
}

// Snapshot returns a copy of the whole state.
func (t *Tracker) Snapshot() models.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// Stopwatches returns the stopwatches in creation order.
func (t *Tracker) Stopwatches() []models.Stopwatch {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Stopwatch{}, t.state.Stopwatches...)
}

// Inbox returns the unorganized records in the order they were stopped.
func (t *Tracker) Inbox() []models.TimeRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.TimeRecord{}, t.state.Inbox...)
}

// Archive returns the organized records in stored order.
func (t *Tracker) Archive() []models.TimeRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.TimeRecord{}, t.state.Archive...)
}

// Folders returns all folders.
func (t *Tracker) Folders() []models.Folder {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Folder{}, t.state.Folders...)
}

// Goals returns all goals.
func (t *Tracker) Goals() []models.Goal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Goal{}, t.state.Goals...)
}

// Summary computes the statistics screen as of now.
func (t *Tracker) Summary() analytics.Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return analytics.Summarize(t.state.Archive, t.state.Goals, t.clock.Now())
}

// Calendar aggregates the archive for one month in the local zone.
func (t *Tracker) Calendar(year int, month time.Month) analytics.CalendarMonth {
	t.mu.Lock()
	defer t.mu.Unlock()
	return analytics.Calendar(t.state.Archive, year, month, t.clock.Now().Location())
}

// RecordsOn lists the archived records that ended on day's local date.
func (t *Tracker) RecordsOn(day time.Time) []models.TimeRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return analytics.RecordsOn(t.state.Archive, day, t.clock.Now().Location())
}
