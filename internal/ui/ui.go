// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skypoint/internal/muhurta"
	"github.com/litescript/ls-skypoint/internal/track"
	"github.com/litescript/ls-skypoint/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewAlign ViewMode = iota
	ViewTargets
	ViewMuhurta
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// TrackEventMsg carries a lock/unlock event from the tracking session.
	TrackEventMsg struct {
		Event track.Event
	}

	// StatusMsg sets a transient status-line message.
	StatusMsg string
)

const tickInterval = 250 * time.Millisecond

// How long the LOCKED banner flashes after a lock event.
const lockFlash = 2 * time.Second

// Model is the root Bubble Tea model.
type Model struct {
	session *track.Session

	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string

	alignView   AlignModel
	targetsView TargetsModel
	muhurtaView MuhurtaModel

	snapshot   track.Snapshot
	lockedAt   time.Time
	muhurtaDay muhurta.Day
	muhurtaFor time.Time // midnight of the day muhurtaDay was computed for
}

// New creates a new root UI model bound to a tracking session.
func New(session *track.Session) Model {
	return Model{
		session:     session,
		viewMode:    ViewAlign,
		alignView:   NewAlignModel(),
		targetsView: NewTargetsModel(),
		muhurtaView: NewMuhurtaModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "a", "1":
			m.viewMode = ViewAlign
		case "t", "2":
			m.viewMode = ViewTargets
		case "m", "3":
			m.viewMode = ViewMuhurta

		case "tab":
			m.cycleTarget()

		case "n":
			m.session.CalibrateNorth()
			m.statusMsg = "Calibrated: current heading is now North"
		case "z":
			m.session.CalibrateHorizon()
			m.statusMsg = "Calibrated: current pitch is now the horizon"
		case "x":
			m.session.ClearTarget()
			m.statusMsg = "Target cleared"

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes ~6 lines, footer 2.
		contentHeight := msg.Height - 8
		m.alignView = m.alignView.SetSize(msg.Width, contentHeight)
		m.targetsView = m.targetsView.SetSize(msg.Width, contentHeight)
		m.muhurtaView = m.muhurtaView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.session.Snapshot()
		m.refreshMuhurta(time.Time(msg))
		m.alignView = m.alignView.UpdateData(m.snapshot)
		m.targetsView = m.targetsView.UpdateData(m.snapshot)
		m.muhurtaView = m.muhurtaView.UpdateData(m.muhurtaDay, time.Time(msg))

	case TrackEventMsg:
		switch msg.Event.Type {
		case track.EventLocked:
			m.lockedAt = msg.Event.At
			m.statusMsg = fmt.Sprintf("Locked on %s", msg.Event.Body)
		case track.EventUnlocked:
			m.statusMsg = fmt.Sprintf("Lost lock on %s", msg.Event.Body)
		}

	case StatusMsg:
		m.statusMsg = string(msg)

	case TargetSelectedMsg:
		if err := m.session.SelectTarget(msg.Body); err != nil {
			m.statusMsg = fmt.Sprintf("Cannot select %s: %v", msg.Body, err)
		} else {
			m.statusMsg = fmt.Sprintf("Tracking %s", msg.Body)
			m.viewMode = ViewAlign
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// cycleTarget advances the tracked body through the roster, wrapping around.
func (m *Model) cycleTarget() {
	next := m.targetsView.NextBody(m.snapshot.Target)
	if err := m.session.SelectTarget(next); err != nil {
		m.statusMsg = fmt.Sprintf("Cannot select %s: %v", next, err)
		return
	}
	m.statusMsg = fmt.Sprintf("Tracking %s", next)
}

func (m *Model) refreshMuhurta(now time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Equal(m.muhurtaFor) {
		return
	}
	m.muhurtaDay = muhurta.ComputeDay(day, m.snapshot.Observer)
	m.muhurtaFor = day
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewAlign:
		m.alignView, cmd = m.alignView.Update(msg)
	case ViewTargets:
		m.targetsView, cmd = m.targetsView.Update(msg)
	case ViewMuhurta:
		m.muhurtaView, cmd = m.muhurtaView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewAlign:
		content = m.alignView.View(time.Since(m.lockedAt) < lockFlash)
	case ViewTargets:
		content = m.targetsView.View()
	case ViewMuhurta:
		content = m.muhurtaView.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

var (
	logoStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(logoStyle.Render("  ✦ ls-skypoint"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  ·  point-to-sky alignment  ·  v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  Observer: %s", m.snapshot.Observer.Name)))
	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render("  " + m.statusMsg))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"a", "align"},
		{"t", "targets"},
		{"m", "muhurta"},
		{"tab", "next target"},
		{"n", "set north"},
		{"z", "set horizon"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, keyStyle.Render("["+k.key+"]")+mutedStyle.Render(" "+k.desc))
	}
	return "  " + strings.Join(parts, "  ")
}
