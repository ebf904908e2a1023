package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/tally/internal/analytics"
	"github.com/balkashynov/tally/internal/clock"
	"github.com/balkashynov/tally/internal/tracker"
)

type counterIDs struct{ n int }

func (c *counterIDs) NewID() string {
	c.n++
	return fmt.Sprintf("rec-%04d", c.n)
}

func newTestTracker() (*tracker.Tracker, *clock.Manual) {
	c := clock.NewManual(time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC))
	return tracker.New(tracker.Options{Clock: c, IDs: &counterIDs{}}), c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	require.NotNil(t, next)
	return next, cmd
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(-time.Second))
	assert.Equal(t, "01:05", FormatClock(65*time.Second))
	assert.Equal(t, "02:03:04", FormatClock(2*time.Hour+3*time.Minute+4*time.Second))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.5h", FormatDuration(90*time.Minute))
	assert.Equal(t, "12m", FormatDuration(12*time.Minute))
	assert.Equal(t, "40s", FormatDuration(40*time.Second))
}

func TestBoardStartToggleStop(t *testing.T) {
	tr, c := newTestTracker()
	var m tea.Model = NewBoardModel(tr, 0)

	m, _ = press(t, m, runes("n"))
	require.Len(t, tr.Stopwatches(), 1)
	assert.True(t, tr.Stopwatches()[0].Running)

	c.Advance(10 * time.Minute)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, tr.Stopwatches()[0].Running)

	m, _ = press(t, m, runes("s"))
	assert.Empty(t, tr.Stopwatches())
	require.Len(t, tr.Inbox(), 1)
	assert.Equal(t, 10*time.Minute, tr.Inbox()[0].Duration)
	assert.Len(t, m.(BoardModel).Stopped(), 1)
}

func TestBoardSelectionAndDiscard(t *testing.T) {
	tr, _ := newTestTracker()
	var m tea.Model = NewBoardModel(tr, 0)

	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))
	assert.Equal(t, 1, m.(BoardModel).selected)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.(BoardModel).selected)

	first := tr.Stopwatches()[0].ID
	m, _ = press(t, m, runes("x"))
	require.Len(t, tr.Stopwatches(), 1)
	assert.NotEqual(t, first, tr.Stopwatches()[0].ID)
	assert.Empty(t, tr.Inbox())
	assert.Equal(t, 0, m.(BoardModel).selected)
}

func TestBoardQuitKeepsStopwatches(t *testing.T) {
	tr, _ := newTestTracker()
	var m tea.Model = NewBoardModel(tr, 0)

	m, _ = press(t, m, runes("n"))
	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Len(t, tr.Stopwatches(), 1)
}

func TestBoardViewShowsClock(t *testing.T) {
	tr, c := newTestTracker()
	var m tea.Model = NewBoardModel(tr, 0)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.View(), "No stopwatches")

	m, _ = press(t, m, runes("n"))
	c.Advance(time.Minute)
	m, _ = press(t, m, boardTickMsg(c.Now()))
	view := m.View()
	assert.Contains(t, view, "TRACKING")
	assert.Contains(t, view, "01:00")
}

func TestOrganizeFormArchivesRecord(t *testing.T) {
	tr, c := newTestTracker()
	folder, err := tr.CreateFolder("Reports")
	require.NoError(t, err)
	sw := tr.Start()
	c.Advance(30 * time.Minute)
	rec, err := tr.Stop(sw.ID)
	require.NoError(t, err)

	var m tea.Model = NewOrganizeModel(tr, rec, map[string]string{
		"name":     "Quarterly report",
		"category": "Writing",
		"folder":   "reports",
	})
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	assert.Empty(t, tr.Inbox())
	archive := tr.Archive()
	require.Len(t, archive, 1)
	assert.Equal(t, "Quarterly report", archive[0].Name)
	assert.Equal(t, "Writing", archive[0].Category)
	assert.Equal(t, folder.ID, archive[0].FolderID)
}

func TestOrganizeFormRejectsUnknownFolder(t *testing.T) {
	tr, c := newTestTracker()
	sw := tr.Start()
	c.Advance(time.Minute)
	rec, err := tr.Stop(sw.ID)
	require.NoError(t, err)

	var m tea.Model = NewOrganizeModel(tr, rec, map[string]string{"folder": "nope"})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Nil(t, m.(OrganizeModel).Organized())
	assert.Contains(t, m.(OrganizeModel).validationErr, "nope")
	assert.Len(t, tr.Inbox(), 1)
}

func TestOrganizeFormFocusAndCancel(t *testing.T) {
	tr, c := newTestTracker()
	sw := tr.Start()
	c.Advance(time.Minute)
	rec, _ := tr.Stop(sw.ID)

	var m tea.Model = NewOrganizeModel(tr, rec, nil)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FieldCategory, m.(OrganizeModel).focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldName, m.(OrganizeModel).focus)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.(OrganizeModel).cancelled)
	assert.Len(t, tr.Inbox(), 1)
}

func TestHeatLevel(t *testing.T) {
	assert.Equal(t, 0, heatLevel(0))
	assert.Equal(t, 1, heatLevel(0.01))
	assert.Equal(t, len(heatColors)-1, heatLevel(1))
}

func TestRenderCalendar(t *testing.T) {
	cal := analytics.Calendar(nil, 2024, time.March, time.UTC)
	out := RenderCalendar(cal)

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Su")
	assert.Contains(t, out, "31")
	assert.NotContains(t, out, "32")
}

func TestRenderProgressBar(t *testing.T) {
	bar := RenderProgressBar(0.5, 10)
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))

	assert.Equal(t, 10, strings.Count(RenderProgressBar(2, 10), "█"))
}
