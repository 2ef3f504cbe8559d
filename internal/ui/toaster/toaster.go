// Package toaster shows short-lived notifications at the bottom of the
// screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interviewfun/authtui/internal/ui/overlay"
	"github.com/interviewfun/authtui/internal/ui/styles"
)

// Style selects the toast's border and prefix.
type Style int

const (
	StyleInfo Style = iota
	StyleSuccess
	StyleError
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Model holds the current toast. Show replaces any visible toast.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
}

// New returns a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that hides it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{seq: seq} })
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.visible && m.message != ""
}

// Message returns the visible message, or "".
func (m Model) Message() string {
	if !m.Visible() {
		return ""
	}
	return m.message
}

// Update handles DismissMsg. A dismiss scheduled for an older toast is
// ignored.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box, or "" when hidden.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	box := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	switch m.style {
	case StyleError:
		return box.BorderForeground(styles.StatusErrorColor).Render("✗ " + m.message)
	case StyleSuccess:
		return box.BorderForeground(styles.AccentColor).Render("✓ " + m.message)
	default:
		return box.BorderForeground(styles.TextMutedColor).Render("• " + m.message)
	}
}

// Overlay draws the toast near the bottom of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.Visible() {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// ShowMsg asks the app to show a toast. Views return it from commands
// since they do not own the toaster.
type ShowMsg struct {
	Message string
	Style   Style
}

// Show returns a command emitting ShowMsg.
func Show(message string, style Style) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Message: message, Style: style} }
}

// DismissMsg hides the toast it was scheduled for.
type DismissMsg struct {
	seq int
}
