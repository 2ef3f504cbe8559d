package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderFormSection draws content inside a rounded box with the title set
// into the top border: ╭─ Title (hint) ───╮. A focused section uses the
// accent color for its border and title.
func RenderFormSection(content []string, title, hint string, width int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = AccentColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(focused).Foreground(borderColor)
	hintStyle := MutedStyle

	inner := max(width-2, 1)

	top := border.Render(borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight)
	if title != "" {
		label := title
		if hint != "" {
			label += " (" + hint + ")"
		}
		fill := max(inner-lipgloss.Width(label)-3, 0)
		top = border.Render(borderTopLeft+borderHorizontal+" ") + titleStyle.Render(title)
		if hint != "" {
			top += " " + hintStyle.Render("("+hint+")")
		}
		top += border.Render(" " + strings.Repeat(borderHorizontal, fill) + borderTopRight)
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top)
	for _, row := range content {
		pad := max(inner-lipgloss.Width(row), 0)
		lines = append(lines, border.Render(borderVertical)+row+strings.Repeat(" ", pad)+border.Render(borderVertical))
	}
	lines = append(lines, border.Render(borderBottomLeft+strings.Repeat(borderHorizontal, inner)+borderBottomRight))
	return strings.Join(lines, "\n")
}

// Divider renders a horizontal rule with text centered in it:
// ──── Or continue with ────
func Divider(text string, width int) string {
	if text == "" {
		return MutedStyle.Render(strings.Repeat(borderHorizontal, max(width, 0)))
	}
	rest := max(width-lipgloss.Width(text)-2, 2)
	left := rest / 2
	right := rest - left
	return MutedStyle.Render(strings.Repeat(borderHorizontal, left) + " " + text + " " + strings.Repeat(borderHorizontal, right))
}
