package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skypoint/internal/ephem"
	"github.com/litescript/ls-skypoint/internal/track"
)

// TargetSelectedMsg requests tracking a body, raised by the target picker.
type TargetSelectedMsg struct {
	Body ephem.Body
}

var (
	pickerHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	pickerRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	pickerBelowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// TargetsModel is the target picker view: the body roster with current
// horizontal coordinates.
type TargetsModel struct {
	width    int
	height   int
	cursor   int
	snapshot track.Snapshot
}

// NewTargetsModel creates a new target picker model.
func NewTargetsModel() TargetsModel {
	return TargetsModel{}
}

// SetSize updates the viewport size.
func (m TargetsModel) SetSize(width, height int) TargetsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a fresh session snapshot.
func (m TargetsModel) UpdateData(snapshot track.Snapshot) TargetsModel {
	m.snapshot = snapshot
	return m
}

// NextBody returns the body after the current target in roster order,
// wrapping around. With no current target it returns the first body.
func (m TargetsModel) NextBody(current *track.Target) ephem.Body {
	if current == nil {
		return ephem.Bodies[0]
	}
	for i, b := range ephem.Bodies {
		if b == current.Body {
			return ephem.Bodies[(i+1)%len(ephem.Bodies)]
		}
	}
	return ephem.Bodies[0]
}

// Update handles messages.
func (m TargetsModel) Update(msg tea.Msg) (TargetsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(ephem.Bodies)-1 {
				m.cursor++
			}
		case "enter":
			body := ephem.Bodies[m.cursor]
			return m, func() tea.Msg { return TargetSelectedMsg{Body: body} }
		}
	}
	return m, nil
}

// View renders the roster table.
func (m TargetsModel) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(pickerHeaderStyle.Render(fmt.Sprintf("%-10s %9s %9s  %s", "BODY", "AZ", "ALT", "")))
	b.WriteString("\n")

	byBody := make(map[ephem.Body]ephem.Position, len(m.snapshot.Positions))
	for _, p := range m.snapshot.Positions {
		byBody[p.Body] = p
	}

	for i, body := range ephem.Bodies {
		pos, ok := byBody[body]

		var note string
		if m.snapshot.Target != nil && m.snapshot.Target.Body == body {
			note = "◀ tracking"
		}

		var line string
		if ok {
			line = fmt.Sprintf("%-10s %8.1f° %8.1f°  %s", body, pos.AzDeg, pos.AltDeg, note)
		} else {
			line = fmt.Sprintf("%-10s %9s %9s  %s", body, "--", "--", note)
		}

		style := pickerRowStyle
		if ok && pos.AltDeg < 0 {
			style = pickerBelowStyle
		}
		if i == m.cursor {
			style = pickerSelectedStyle
		}

		b.WriteString("  ")
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  ↑/↓ move · enter track · dim rows are below the horizon"))
	b.WriteString("\n")

	return b.String()
}
