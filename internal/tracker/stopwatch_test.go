package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCreatesRunningStopwatch(t *testing.T) {
	tr, c, store := newTestTracker(t)

	sw := tr.Start()

	assert.True(t, sw.Running)
	assert.Zero(t, sw.Elapsed)
	assert.Equal(t, c.Now(), sw.StartTime)
	assert.Len(t, tr.Stopwatches(), 1)
	assert.Equal(t, 1, store.saves)
}

func TestMultipleStopwatchesRunConcurrently(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	for i := 0; i < 5; i++ {
		tr.Start()
	}

	assert.Len(t, tr.Stopwatches(), 5)
}

func TestElapsedNowGrowsWhileRunning(t *testing.T) {
	tr, c, _ := newTestTracker(t)
	sw := tr.Start()

	prev := tr.ElapsedNow(sw)
	for i := 0; i < 3; i++ {
		c.Advance(100 * time.Millisecond)
		cur := tr.ElapsedNow(sw)
		assert.Greater(t, cur, prev)
		assert.GreaterOrEqual(t, cur, sw.Elapsed)
		prev = cur
	}
}

func TestTogglePausesAndResumes(t *testing.T) {
	tr, c, _ := newTestTracker(t)
	sw := tr.Start()

	c.Advance(10 * time.Minute)
	paused, err := tr.Toggle(sw.ID)
	require.NoError(t, err)
	assert.False(t, paused.Running)
	assert.Equal(t, 10*time.Minute, paused.Elapsed)

	c.Advance(time.Hour)
	assert.Equal(t, 10*time.Minute, tr.ElapsedNow(paused))

	resumed, err := tr.Toggle(sw.ID)
	require.NoError(t, err)
	assert.True(t, resumed.Running)
	assert.Equal(t, c.Now(), resumed.StartTime)

	c.Advance(5 * time.Minute)
	assert.Equal(t, 15*time.Minute, tr.ElapsedNow(resumed))
}

func TestPauseResumeKeepsElapsed(t *testing.T) {
	tr, c, _ := newTestTracker(t)
	sw := tr.Start()
	c.Advance(7 * time.Minute)

	before := tr.ElapsedNow(sw)
	_, err := tr.Toggle(sw.ID)
	require.NoError(t, err)
	after, err := tr.Toggle(sw.ID)
	require.NoError(t, err)

	assert.Equal(t, before, tr.ElapsedNow(after))
	assert.NotEqual(t, sw.StartTime, after.StartTime)
}

func TestToggleUnknownIsNoop(t *testing.T) {
	tr, _, store := newTestTracker(t)
	tr.Start()
	saves := store.saves

	_, err := tr.Toggle("missing")

	assert.ErrorIs(t, err, ErrStopwatchNotFound)
	assert.Equal(t, saves, store.saves)
}

func TestStopProducesInboxRecord(t *testing.T) {
	tr, c, _ := newTestTracker(t)
	sw := tr.Start()
	c.Advance(20 * time.Minute)
	_, _ = tr.Toggle(sw.ID)
	c.Advance(time.Hour)
	_, _ = tr.Toggle(sw.ID)
	c.Advance(10 * time.Minute)

	rec, err := tr.Stop(sw.ID)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, rec.Duration)
	assert.Equal(t, c.Now(), rec.EndedAt)
	assert.Equal(t, rec.Duration, rec.EndedAt.Sub(rec.StartedAt))
	assert.False(t, rec.IsArchived())
	assert.Empty(t, tr.Stopwatches())
	assert.Equal(t, []string{rec.ID}, ids(tr.Inbox()))
}

func TestStopAppendsToInboxInStopOrder(t *testing.T) {
	tr, c, _ := newTestTracker(t)
	first := tr.Start()
	second := tr.Start()
	c.Advance(time.Minute)

	r2, err := tr.Stop(second.ID)
	require.NoError(t, err)
	r1, err := tr.Stop(first.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{r2.ID, r1.ID}, ids(tr.Inbox()))
}

func TestStopUnknownIsNoop(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	tr.Start()

	_, err := tr.Stop("missing")

	assert.ErrorIs(t, err, ErrStopwatchNotFound)
	assert.Len(t, tr.Stopwatches(), 1)
	assert.Empty(t, tr.Inbox())
}

func TestDiscardRemovesWithoutRecord(t *testing.T) {
	tr, c, _ := newTestTracker(t)
	sw := tr.Start()
	c.Advance(time.Hour)

	require.NoError(t, tr.Discard(sw.ID))

	assert.Empty(t, tr.Stopwatches())
	assert.Empty(t, tr.Inbox())
	assert.ErrorIs(t, tr.Discard(sw.ID), ErrStopwatchNotFound)
}
