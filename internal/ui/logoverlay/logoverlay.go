// Package logoverlay is the in-app debug log viewer.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/interviewfun/authtui/internal/log"
	"github.com/interviewfun/authtui/internal/ui/overlay"
	"github.com/interviewfun/authtui/internal/ui/styles"
)

const (
	maxViewportHeight = 25
	minViewportHeight = 5
	maxBoxWidth       = 160
	minBoxWidth       = 40
)

var warnColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FECA57"}

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model is the overlay state. It reads entries from the log ring buffer.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	viewport viewport.Model
}

// New returns a hidden overlay showing all levels.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Visible reports whether the overlay is showing.
func (m Model) Visible() bool { return m.visible }

// MinLevel returns the active level filter.
func (m Model) MinLevel() log.Level { return m.minLevel }

// Toggle shows or hides the overlay.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
	}
}

// SetSize records the screen size.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.refresh()
}

// Refresh reloads entries, keeping the view pinned to the bottom if it was.
func (m *Model) Refresh() {
	if m.visible {
		atBottom := m.viewport.AtBottom()
		m.refresh()
		if atBottom {
			m.viewport.GotoBottom()
		}
	}
}

// Update handles keys while visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			log.ClearBuffer()
			m.refresh()
		case "d":
			m.setLevel(log.LevelDebug)
		case "i":
			m.setLevel(log.LevelInfo)
		case "w":
			m.setLevel(log.LevelWarn)
		case "e":
			m.setLevel(log.LevelError)
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) setLevel(l log.Level) {
	m.minLevel = l
	m.refresh()
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := max(min(maxViewportHeight, m.height-6), minViewportHeight)
	m.viewport = viewport.New(m.contentWidth(), h)
	m.viewport.SetContent(m.content())
	m.viewport.GotoBottom()
}

func (m Model) boxWidth() int     { return max(min(m.width-4, maxBoxWidth), minBoxWidth) }
func (m Model) contentWidth() int { return m.boxWidth() - 2 }

func (m Model) content() string {
	var lines []string
	for _, entry := range log.GetRecentLogs(10000) {
		if levelOf(entry) >= m.minLevel {
			lines = append(lines, colorize(entry, m.contentWidth()))
		}
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// levelOf parses the [LEVEL] tag. Untagged entries count as ERROR so
// they are never filtered out.
func levelOf(entry string) log.Level {
	switch {
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn
	default:
		return log.LevelError
	}
}

func colorize(entry string, width int) string {
	entry = strings.TrimSuffix(entry, "\n")
	if ansi.StringWidth(entry) > width {
		entry = ansi.Truncate(entry, width, "...")
	}
	var c lipgloss.TerminalColor = styles.TextPrimaryColor
	switch levelOf(entry) {
	case log.LevelDebug:
		c = styles.TextMutedColor
	case log.LevelWarn:
		c = warnColor
	case log.LevelError:
		c = styles.StatusErrorColor
	}
	return lipgloss.NewStyle().Foreground(c).Render(entry)
}

// View renders the overlay box, or "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	w := m.boxWidth()
	rule := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", w))

	body := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).PaddingLeft(1).Render("Logs"),
		rule,
		m.viewport.View(),
		rule,
		m.hints(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(w).
		Render(body)
}

func (m Model) hints() string {
	dim := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	on := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{dim.Render("[c] Clear")}
	for _, f := range []struct {
		label string
		level log.Level
	}{
		{"[d] Debug", log.LevelDebug},
		{"[i] Info", log.LevelInfo},
		{"[w] Warn", log.LevelWarn},
		{"[e] Error", log.LevelError},
	} {
		if f.level == m.minLevel {
			parts = append(parts, on.Render(f.label))
		} else {
			parts = append(parts, dim.Render(f.label))
		}
	}
	return strings.Join(parts, "  ")
}

// Overlay draws the overlay centered over bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
