package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tally/internal/models"
	"github.com/balkashynov/tally/internal/tracker"
)

// Field is one input of the organize form.
type Field int

const (
	FieldName Field = iota
	FieldCategory
	FieldSummary
	FieldFolder
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Category", "Summary", "Folder"}

// OrganizeModel is a form that labels one inbox record and archives it.
type OrganizeModel struct {
	tracker *tracker.Tracker
	record  models.TimeRecord
	inputs  []textinput.Model
	focus   Field
	width   int
	height  int

	validationErr string
	organized     *models.TimeRecord
	cancelled     bool
}

// NewOrganizeModel creates the form with optional prefilled values keyed
// by "name", "category", "summary" and "folder".
func NewOrganizeModel(tr *tracker.Tracker, record models.TimeRecord, prefilled map[string]string) OrganizeModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[FieldName].Placeholder = "What was this time spent on?"
	inputs[FieldName].CharLimit = 200
	inputs[FieldCategory].Placeholder = "Category, e.g. Deep Work (Enter to skip)"
	inputs[FieldCategory].CharLimit = 50
	inputs[FieldSummary].Placeholder = "Short summary (Enter to skip)"
	inputs[FieldSummary].CharLimit = 500
	inputs[FieldFolder].Placeholder = "Folder name or id (Enter to skip)"
	inputs[FieldFolder].CharLimit = 50

	keys := [fieldCount]string{"name", "category", "summary", "folder"}
	for i, k := range keys {
		if v, ok := prefilled[k]; ok {
			inputs[i].SetValue(v)
		}
	}
	inputs[FieldName].Focus()

	return OrganizeModel{
		tracker: tr,
		record:  record,
		inputs:  inputs,
	}
}

// Init starts the cursor blink
func (m OrganizeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m OrganizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := min(max(m.width-20, 30), 80)
		for i := range m.inputs {
			m.inputs[i].Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.focus == FieldFolder {
				return m.submit()
			}
			return m.moveFocus(1)
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m OrganizeModel) moveFocus(delta int) (OrganizeModel, tea.Cmd) {
	next := int(m.focus) + delta
	if next < 0 || next >= int(fieldCount) {
		return m, nil
	}
	m.inputs[m.focus].Blur()
	m.focus = Field(next)
	m.inputs[m.focus].Focus()
	m.validationErr = ""
	return m, textinput.Blink
}

func (m OrganizeModel) submit() (OrganizeModel, tea.Cmd) {
	labels := tracker.Labels{
		Name:     m.inputs[FieldName].Value(),
		Category: m.inputs[FieldCategory].Value(),
		Summary:  m.inputs[FieldSummary].Value(),
	}

	if ref := strings.TrimSpace(m.inputs[FieldFolder].Value()); ref != "" {
		folder, err := m.tracker.FindFolder(ref)
		if err != nil {
			m.validationErr = fmt.Sprintf("Folder '%s': %v", ref, err)
			return m, nil
		}
		labels.FolderID = folder.ID
	}

	rec, err := m.tracker.Organize(m.record.ID, labels)
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	m.organized = &rec
	return m, tea.Quit
}

// Organized returns the archived record, or nil if the form was cancelled.
func (m OrganizeModel) Organized() *models.TimeRecord {
	return m.organized
}

// View renders the form
func (m OrganizeModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(titleStyle.Render(fmt.Sprintf("🗂  Organize %s · %s",
		ShortID(m.record.ID), FormatDuration(m.record.Duration))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).
		Render(fmt.Sprintf("%s → %s",
			m.record.StartedAt.Format("Jan 02 15:04"), m.record.EndedAt.Format("15:04"))))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabel := labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	for i := range m.inputs {
		style := labelStyle
		marker := "  "
		if Field(i) == m.focus {
			style = activeLabel
			marker = "▶ "
		}
		b.WriteString(marker + style.Render(fieldLabels[i]) + m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).
			Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true).
		Render("Enter: next (archive on last field) | Tab/↓: next | Shift+Tab/↑: back | Ctrl+S: archive | Esc: cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Render(b.String())

	if m.width == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
