package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tally/internal/analytics"
)

const cellWidth = 4

// RenderCalendar draws a month as a Sunday-first heat-map. Cell shade
// follows the day's intensity.
func RenderCalendar(cal analytics.CalendarMonth) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Width(cellWidth * 7).
		Align(lipgloss.Center)
	b.WriteString(title.Render(fmt.Sprintf("%s %d", cal.Month, cal.Year)))
	b.WriteString("\n")

	weekday := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).
		Foreground(lipgloss.Color(ColorSecondaryText))
	for _, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(weekday.Render(d))
	}
	b.WriteString("\n")

	cells := cal.Cells()
	for i, cell := range cells {
		b.WriteString(renderCell(cell))
		if i%7 == 6 && i != len(cells)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(renderLegend())
	return b.String()
}

func renderCell(day *analytics.CalendarDay) string {
	style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	if day == nil {
		return style.Render("")
	}

	shade := heatLevel(day.Intensity)
	style = style.Background(lipgloss.Color(heatColors[shade]))
	if shade == 0 {
		style = style.Foreground(lipgloss.Color(ColorDisabledText))
	} else {
		style = style.Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	}
	return style.Render(fmt.Sprintf("%d", day.Date.Day()))
}

// heatLevel maps an intensity in [0,1] to an index into heatColors. Any
// tracked time gets at least the first shade.
func heatLevel(intensity float64) int {
	if intensity <= 0 {
		return 0
	}
	top := len(heatColors) - 1
	level := int(intensity*float64(top-1)) + 1
	if level > top {
		level = top
	}
	return level
}

func renderLegend() string {
	var b strings.Builder
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString(muted.Render("0h "))
	for _, c := range heatColors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  "))
	}
	b.WriteString(muted.Render(fmt.Sprintf(" %.0fh+", analytics.FullIntensity.Hours())))
	return b.String()
}

// RenderProgressBar draws fraction (clamped to [0,1]) as a bar of width cells.
func RenderProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))

	color := ColorAccentBright
	if fraction >= 1 {
		color = ColorSuccess
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).Render(strings.Repeat("░", width-filled))
}
