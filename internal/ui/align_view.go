package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skypoint/internal/track"
)

// Alignment view colors
const (
	colorLocked  = "#7CFC00" // lawn green
	colorCoarse  = "#FFD700" // gold
	colorFar     = "#FF6347" // tomato
	colorAdapt   = "#FF4500" // orange-red, below-horizon advisory
	colorNeutral = "252"
)

var (
	lockBannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color(colorLocked)).
			Padding(0, 2)

	advisoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAdapt))

	arrowStyle = lipgloss.NewStyle().Bold(true)

	readoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorNeutral))
)

// AlignModel is the pointing-guidance view.
type AlignModel struct {
	width    int
	height   int
	snapshot track.Snapshot
}

// NewAlignModel creates a new alignment view model.
func NewAlignModel() AlignModel {
	return AlignModel{}
}

// SetSize updates the viewport size.
func (m AlignModel) SetSize(width, height int) AlignModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a fresh session snapshot.
func (m AlignModel) UpdateData(snapshot track.Snapshot) AlignModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages. The alignment view has no interactive state of
// its own; all keys are handled by the root model.
func (m AlignModel) Update(msg tea.Msg) (AlignModel, tea.Cmd) {
	_ = msg
	return m, nil
}

// View renders the alignment guidance. flash is true while a recent lock
// should be celebrated with the full banner.
func (m AlignModel) View(flash bool) string {
	var b strings.Builder

	target := m.snapshot.Target
	if target == nil {
		b.WriteString("\n  No target selected.\n\n")
		b.WriteString(mutedStyle.Render("  Press [tab] to cycle targets or [t] to open the picker."))
		b.WriteString("\n")
		return b.String()
	}

	res := m.snapshot.Result

	b.WriteString("\n")
	b.WriteString(readoutStyle.Render(fmt.Sprintf("  Target  %-8s  az %6.1f°  alt %6.1f°",
		target.Body, target.AzDeg, target.AltDeg)))
	b.WriteString("\n")

	if m.snapshot.Seeded {
		b.WriteString(readoutStyle.Render(fmt.Sprintf("  You     %-8s  az %6.1f°  alt %6.1f°",
			"", m.snapshot.State.HeadingDeg, m.snapshot.State.PitchDeg)))
	} else {
		b.WriteString(mutedStyle.Render("  You     waiting for sensor data..."))
	}
	b.WriteString("\n\n")

	if res.BelowHorizon {
		b.WriteString("  ")
		b.WriteString(advisoryStyle.Render(fmt.Sprintf("▽ %s is below the horizon", target.Body)))
		b.WriteString("\n\n")
	}

	if res.Aligned {
		banner := "● ON TARGET"
		if flash {
			banner = "★ LOCKED ★"
		}
		b.WriteString("  ")
		b.WriteString(lockBannerStyle.Render(banner))
		b.WriteString("\n")
		return b.String()
	}

	if !m.snapshot.Seeded {
		return b.String()
	}

	arrow := arrowGlyph(res.ArrowDeg())
	sep := offTargetDeg(res)
	b.WriteString("  ")
	b.WriteString(arrowStyle.Foreground(lipgloss.Color(colorByOffset(sep))).Render(
		fmt.Sprintf("%s  off by %.1f°", arrow, sep)))
	b.WriteString("\n\n")

	b.WriteString(readoutStyle.Render("  " + res.AzGuidance))
	b.WriteString("\n")
	b.WriteString(readoutStyle.Render("  " + res.AltGuidance))
	b.WriteString("\n")

	return b.String()
}

// offTargetDeg reduces the two deltas to a single magnitude for display.
func offTargetDeg(r track.Result) float64 {
	az := r.AzDeltaDeg
	if az < 0 {
		az = -az
	}
	alt := r.AltDeltaDeg
	if alt < 0 {
		alt = -alt
	}
	if az > alt {
		return az
	}
	return alt
}

func colorByOffset(deg float64) string {
	switch {
	case deg < 15:
		return colorCoarse
	default:
		return colorFar
	}
}

// arrowGlyph maps a screen rotation (0 = up, clockwise) to one of eight
// arrow runes.
func arrowGlyph(deg float64) string {
	glyphs := []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}
	idx := int((deg+22.5)/45) % 8
	if idx < 0 {
		idx += 8
	}
	return glyphs[idx]
}
