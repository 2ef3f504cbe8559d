// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/interviewfun/authtui/internal/config"
)

// Default accent colors. ApplyTheme may override them.
const (
	DefaultAccent = "#15803D"
	DefaultError  = "#DC2626"
)

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#8B8B8B"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B6B6B"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B4B4B"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#FFFFFF"}

	// Themeable
	AccentColor      lipgloss.TerminalColor = lipgloss.Color(DefaultAccent)
	StatusErrorColor lipgloss.TerminalColor = lipgloss.Color(DefaultError)

	ButtonTextColor       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonSecondaryBg     = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#2D3436"}
	ButtonSecondaryFocus  = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#636E72"}
	ButtonSecondaryText   = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#FFFFFF"}
	ButtonDisabledBgColor = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#2D2D2D"}
	ButtonDisabledText    = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B6B6B"}

	SpinnerColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#FFFFFF"}
)

// Derived styles. Rebuilt by ApplyTheme.
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	MutedStyle    lipgloss.Style

	LabelStyle        lipgloss.Style
	FocusedLabelStyle lipgloss.Style
	FieldErrorStyle   lipgloss.Style
	BannerStyle       lipgloss.Style

	LinkStyle        lipgloss.Style
	FocusedLinkStyle lipgloss.Style

	PrimaryButtonStyle          lipgloss.Style
	PrimaryButtonFocusedStyle   lipgloss.Style
	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style
	DisabledButtonStyle         lipgloss.Style

	BrandPanelStyle lipgloss.Style
	BrandNameStyle  lipgloss.Style
	CardStyle       lipgloss.Style
	HelpStyle       lipgloss.Style
)

func init() { rebuild() }

// ApplyTheme applies color overrides from configuration. Empty values keep
// the defaults.
func ApplyTheme(t config.ThemeConfig) {
	AccentColor = lipgloss.Color(DefaultAccent)
	StatusErrorColor = lipgloss.Color(DefaultError)
	if t.Accent != "" {
		AccentColor = lipgloss.Color(t.Accent)
	}
	if t.Error != "" {
		StatusErrorColor = lipgloss.Color(t.Error)
	}
	rebuild()
}

func rebuild() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	SubtitleStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	LabelStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	FocusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	FieldErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	BannerStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(StatusErrorColor).
		Padding(0, 1)

	LinkStyle = lipgloss.NewStyle().Underline(true).Foreground(TextPrimaryColor)
	FocusedLinkStyle = lipgloss.NewStyle().Underline(true).Bold(true).Foreground(AccentColor)

	base := lipgloss.NewStyle().Padding(0, 2).Bold(true).Align(lipgloss.Center)
	PrimaryButtonStyle = base.Foreground(ButtonTextColor).Background(AccentColor)
	PrimaryButtonFocusedStyle = PrimaryButtonStyle.Underline(true).UnderlineSpaces(true)
	SecondaryButtonStyle = base.Foreground(ButtonSecondaryText).Background(ButtonSecondaryBg)
	SecondaryButtonFocusedStyle = base.Foreground(ButtonSecondaryText).Background(ButtonSecondaryFocus).
		Underline(true).UnderlineSpaces(true)
	DisabledButtonStyle = base.Foreground(ButtonDisabledText).Background(ButtonDisabledBgColor)

	BrandPanelStyle = lipgloss.NewStyle().
		Background(AccentColor).
		Foreground(ButtonTextColor).
		Align(lipgloss.Center, lipgloss.Center)
	BrandNameStyle = lipgloss.NewStyle().Bold(true).Foreground(ButtonTextColor).Background(AccentColor)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor)
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
}

// ButtonKind selects a button's palette.
type ButtonKind int

const (
	ButtonPrimary ButtonKind = iota
	ButtonSecondary
)

// RenderButton renders a button label. Disabled wins over focused.
func RenderButton(label string, kind ButtonKind, focused, disabled bool, width int) string {
	var s lipgloss.Style
	switch {
	case disabled:
		s = DisabledButtonStyle
	case kind == ButtonPrimary && focused:
		s = PrimaryButtonFocusedStyle
	case kind == ButtonPrimary:
		s = PrimaryButtonStyle
	case focused:
		s = SecondaryButtonFocusedStyle
	default:
		s = SecondaryButtonStyle
	}
	if width > 0 {
		s = s.Width(width)
	}
	return s.Render(label)
}
