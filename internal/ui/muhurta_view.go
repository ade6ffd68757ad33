package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skypoint/internal/astro"
	"github.com/litescript/ls-skypoint/internal/muhurta"
)

var (
	windowActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("46"))

	windowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	windowPastStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	polarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("135"))
)

// MuhurtaModel is the sunrise/sunset observance-window view.
type MuhurtaModel struct {
	width  int
	height int
	day    muhurta.Day
	now    time.Time
}

// NewMuhurtaModel creates a new muhurta view model.
func NewMuhurtaModel() MuhurtaModel {
	return MuhurtaModel{}
}

// SetSize updates the viewport size.
func (m MuhurtaModel) SetSize(width, height int) MuhurtaModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with the computed day and the current time.
func (m MuhurtaModel) UpdateData(day muhurta.Day, now time.Time) MuhurtaModel {
	m.day = day
	m.now = now
	return m
}

// Update handles messages. The muhurta view is read-only.
func (m MuhurtaModel) Update(msg tea.Msg) (MuhurtaModel, tea.Cmd) {
	_ = msg
	return m, nil
}

// View renders today's windows, or the polar condition when there are none.
func (m MuhurtaModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	switch m.day.Condition {
	case astro.PolarDay:
		b.WriteString("  ")
		b.WriteString(polarStyle.Render("Polar day: the sun does not set today"))
		b.WriteString("\n  ")
		b.WriteString(mutedStyle.Render("No sunrise or sunset, so no observance windows."))
		b.WriteString("\n")
		return b.String()
	case astro.PolarNight:
		b.WriteString("  ")
		b.WriteString(polarStyle.Render("Polar night: the sun does not rise today"))
		b.WriteString("\n  ")
		b.WriteString(mutedStyle.Render("No sunrise or sunset, so no observance windows."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(windowStyle.Render(fmt.Sprintf("  Sunrise %s   Solar noon %s   Sunset %s",
		clock(m.day.Sunrise), clock(m.day.SolarNoon), clock(m.day.Sunset))))
	b.WriteString("\n\n")

	for _, w := range m.day.Windows() {
		style := windowStyle
		marker := " "
		switch {
		case w.Contains(m.now):
			style = windowActiveStyle
			marker = "●"
		case !m.now.Before(w.End):
			style = windowPastStyle
		}
		b.WriteString("  ")
		b.WriteString(style.Render(fmt.Sprintf("%s %-16s %s – %s", marker, w.Name, clock(w.Start), clock(w.End))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  ● marks the window in progress"))
	b.WriteString("\n")

	return b.String()
}

func clock(t time.Time) string {
	return t.Format("15:04")
}
