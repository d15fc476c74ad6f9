// Package toaster provides a notification toast overlay component.
package toaster

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campusctl/campus/internal/ui/overlay"
	"github.com/campusctl/campus/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Model holds the toaster state.
type Model struct {
	lines   []string
	style   Style
	visible bool
	seq     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast; each line is rendered on its own row. The
// returned command dismisses this toast after DefaultDuration unless a newer
// one replaced it.
func (m Model) Show(style Style, lines ...string) (Model, tea.Cmd) {
	m.lines = lines
	m.style = style
	m.visible = len(lines) > 0
	m.seq++
	return m, ScheduleDismiss(m.seq, DefaultDuration)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.lines = nil
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Lines returns the message lines of the current toast.
func (m Model) Lines() []string {
	return m.lines
}

// Update handles DismissMsg for the current toast only.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	var border lipgloss.TerminalColor
	var icon string
	switch m.style {
	case StyleError:
		border, icon = styles.ErrorColor, "✗ "
	case StyleInfo:
		border, icon = styles.InfoColor, "i "
	case StyleWarn:
		border, icon = styles.WarnColor, "! "
	default:
		border, icon = styles.SuccessColor, "✓ "
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(icon + strings.Join(m.lines, "\n  "))
}

// Overlay renders the toast at the bottom of the background view.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(m.View(), bg, width, height, overlay.Bottom)
}

// DismissMsg signals that the toast with the matching sequence should close.
type DismissMsg struct {
	seq int
}

// ScheduleDismiss returns a command that dismisses toast seq after d.
func ScheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}
