package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tally/internal/models"
	"github.com/balkashynov/tally/internal/tracker"
)

type boardKeyMap struct {
	Start   key.Binding
	Toggle  key.Binding
	Stop    key.Binding
	Discard key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Toggle, k.Stop, k.Discard, k.Up, k.Down, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = boardKeyMap{
	Start:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
	Stop:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop → inbox")),
	Discard: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit (keep running)")),
}

// boardTickMsg refreshes the displayed elapsed times.
type boardTickMsg time.Time

// BoardModel shows every stopwatch with a big clock for the selected one.
type BoardModel struct {
	tracker *tracker.Tracker
	tick    time.Duration
	keys    boardKeyMap
	help    help.Model

	width    int
	height   int
	now      time.Time
	selected int
	status   string
	isError  bool

	stopped []models.TimeRecord
}

// NewBoardModel creates the watch board. A non-positive tick falls back to 100ms.
func NewBoardModel(tr *tracker.Tracker, tick time.Duration) BoardModel {
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	return BoardModel{
		tracker: tr,
		tick:    tick,
		keys:    boardKeys,
		help:    h,
		now:     tr.Now(),
	}
}

func (m BoardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return boardTickMsg(t)
	})
}

// Init starts the refresh ticker
func (m BoardModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardTickMsg:
		m.now = m.tracker.Now()
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sws := m.tracker.Stopwatches()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		sw := m.tracker.Start()
		m.selected = len(sws)
		m.setStatus(fmt.Sprintf("Started %s", ShortID(sw.ID)), nil)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(sws)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Toggle):
		if sw, ok := m.current(sws); ok {
			toggled, err := m.tracker.Toggle(sw.ID)
			state := "Resumed"
			if !toggled.Running {
				state = "Paused"
			}
			m.setStatus(fmt.Sprintf("%s %s", state, ShortID(sw.ID)), err)
		}

	case key.Matches(msg, m.keys.Stop):
		if sw, ok := m.current(sws); ok {
			rec, err := m.tracker.Stop(sw.ID)
			if err == nil {
				m.stopped = append(m.stopped, rec)
			}
			m.setStatus(fmt.Sprintf("Stopped %s after %s, record %s is in the inbox",
				ShortID(sw.ID), FormatDuration(rec.Duration), ShortID(rec.ID)), err)
			m.clampSelection()
		}

	case key.Matches(msg, m.keys.Discard):
		if sw, ok := m.current(sws); ok {
			err := m.tracker.Discard(sw.ID)
			m.setStatus(fmt.Sprintf("Discarded %s", ShortID(sw.ID)), err)
			m.clampSelection()
		}
	}

	m.now = m.tracker.Now()
	return m, nil
}

func (m BoardModel) current(sws []models.Stopwatch) (models.Stopwatch, bool) {
	if m.selected < 0 || m.selected >= len(sws) {
		return models.Stopwatch{}, false
	}
	return sws[m.selected], true
}

func (m *BoardModel) clampSelection() {
	n := len(m.tracker.Stopwatches())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *BoardModel) setStatus(text string, err error) {
	m.isError = err != nil
	if err != nil {
		if errors.Is(err, tracker.ErrStopwatchNotFound) {
			text = "That stopwatch is gone"
		} else {
			text = err.Error()
		}
	}
	m.status = text
}

// Stopped returns the records produced while the board was open.
func (m BoardModel) Stopped() []models.TimeRecord {
	return m.stopped
}

// View renders the board
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sws := m.tracker.Stopwatches()
	helpBar := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).
		Render(m.help.View(m.keys))
	contentHeight := m.height - lipgloss.Height(helpBar) - 1

	var content string
	if len(sws) == 0 {
		content = lipgloss.NewStyle().
			Width(m.width).Height(contentHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render("No stopwatches running.\n\nPress n to start one.")
	} else if m.width < 90 {
		content = m.renderClockPanel(sws, m.width, contentHeight)
	} else {
		leftWidth := m.width / 2
		rightWidth := m.width - leftWidth - 2
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderClockPanel(sws, leftWidth, contentHeight),
			"  ",
			m.renderListPanel(sws, rightWidth, contentHeight),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

func (m BoardModel) renderClockPanel(sws []models.Stopwatch, width, height int) string {
	sw, _ := m.current(sws)
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	header := "⏱  TRACKING  ⏱"
	clockColor := ColorAccentBright
	if !sw.Running {
		header = "⏸  PAUSED  ⏸"
		clockColor = ColorWarning
	}

	components := []string{
		center.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true).Render(header),
		center.Foreground(lipgloss.Color(ColorAccentMain)).Render(ShortID(sw.ID)),
		center.Render(renderBigClock(FormatClock(sw.ElapsedAt(m.now)), clockColor)),
		center.Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).
			Render(fmt.Sprintf("Segment started at %s", sw.StartTime.Format("15:04:05"))),
	}
	if m.status != "" {
		color := ColorSuccess
		if m.isError {
			color = ColorError
		}
		components = append(components, center.Foreground(lipgloss.Color(color)).Render(m.status))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

func (m BoardModel) renderListPanel(sws []models.Stopwatch, width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Render(fmt.Sprintf("Stopwatches (%d)", len(sws)))
	b.WriteString(title)
	b.WriteString("\n\n")

	for i, sw := range sws {
		icon, color := "▶", ColorSuccess
		if !sw.Running {
			icon, color = "⏸", ColorWarning
		}
		line := fmt.Sprintf("%s %s  %s", icon, ShortID(sw.ID), FormatClock(sw.ElapsedAt(m.now)))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		if i == m.selected {
			style = style.Bold(true).Background(lipgloss.Color(ColorCardBackground))
			line = "› " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Render(b.String())
}
