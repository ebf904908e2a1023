package tracker

import (
	"time"

	"github.com/balkashynov/tally/internal/models"
)

// Start creates a running stopwatch. Any number may run at once.
func (t *Tracker) Start() models.Stopwatch {
	t.mu.Lock()
	defer t.mu.Unlock()

	sw := models.Stopwatch{
		ID:        t.ids.NewID(),
		StartTime: t.clock.Now(),
		Running:   true,
	}
	t.state.Stopwatches = append(t.state.Stopwatches, sw)
	t.logger.Debug("started stopwatch", "id", sw.ID)
	t.commit()
	return sw
}

// Toggle pauses a running stopwatch, folding the current segment into
// Elapsed, or resumes a paused one from now.
func (t *Tracker) Toggle(id string) (models.Stopwatch, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.stopwatchIndex(id)
	if i < 0 {
		return models.Stopwatch{}, ErrStopwatchNotFound
	}

	now := t.clock.Now()
	sw := &t.state.Stopwatches[i]
	if sw.Running {
		sw.Elapsed = sw.ElapsedAt(now)
		sw.Running = false
	} else {
		sw.StartTime = now
		sw.Running = true
	}
	t.commit()
	return *sw, nil
}

// ElapsedNow is the live elapsed time of sw. It never mutates state.
func (t *Tracker) ElapsedNow(sw models.Stopwatch) time.Duration {
	return sw.ElapsedAt(t.clock.Now())
}

// Stop removes the stopwatch and appends its measurement to the inbox.
// The record ends now and starts exactly Duration earlier.
func (t *Tracker) Stop(id string) (models.TimeRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.stopwatchIndex(id)
	if i < 0 {
		return models.TimeRecord{}, ErrStopwatchNotFound
	}

	now := t.clock.Now()
	elapsed := t.state.Stopwatches[i].ElapsedAt(now)
	t.state.Stopwatches = append(t.state.Stopwatches[:i], t.state.Stopwatches[i+1:]...)

	rec := models.TimeRecord{
		ID:        t.ids.NewID(),
		Duration:  elapsed,
		StartedAt: now.Add(-elapsed),
		EndedAt:   now,
	}
	t.state.Inbox = append(t.state.Inbox, rec)
	t.logger.Debug("stopped stopwatch", "id", id, "record", rec.ID, "duration", elapsed)
	t.commit()
	return rec, nil
}

// Discard removes the stopwatch without producing a record.
func (t *Tracker) Discard(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.stopwatchIndex(id)
	if i < 0 {
		return ErrStopwatchNotFound
	}
	t.state.Stopwatches = append(t.state.Stopwatches[:i], t.state.Stopwatches[i+1:]...)
	t.commit()
	return nil
}

// Stopwatch looks up a stopwatch by id.
func (t *Tracker) Stopwatch(id string) (models.Stopwatch, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.stopwatchIndex(id)
	if i < 0 {
		return models.Stopwatch{}, false
	}
	return t.state.Stopwatches[i], true
}

func (t *Tracker) stopwatchIndex(id string) int {
	for i, sw := range t.state.Stopwatches {
		if sw.ID == id {
			return i
		}
	}
	return -1
}
