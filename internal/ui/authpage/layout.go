package authpage

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/ui/form"
	"github.com/interviewfun/authtui/internal/ui/styles"
)

const (
	// BrandBreakpoint is the narrowest terminal that shows the brand panel.
	BrandBreakpoint = 100
	// ColumnWidth is the form column's preferred width.
	ColumnWidth = 48
	// MinColumnWidth is the narrowest the form column gets.
	MinColumnWidth = 28
)

// ColumnWidthFor returns the form column width for a terminal width.
func ColumnWidthFor(termWidth int) int {
	if termWidth <= 0 {
		return ColumnWidth
	}
	return max(min(ColumnWidth, termWidth-8), MinColumnWidth)
}

// Page is everything Render needs to draw an auth view.
type Page struct {
	Title        string
	Subtitle     string
	Form         form.Model
	Error        string // banner text; empty hides the banner
	Pending      bool
	Spinner      string
	SwitchPrompt string // e.g. "Already have an account?"
	BrandName    string
	ShowBrand    bool
	Legal        bool
	Help         string
}

// Render draws p centered in a width x height screen.
func Render(p Page, width, height int) string {
	col := p.Form.Width()
	center := func(s string) string { return lipgloss.PlaceHorizontal(col, lipgloss.Center, s) }

	parts := []string{
		center(styles.TitleStyle.Render(p.Title)),
		center(styles.SubtitleStyle.Render(p.Subtitle)),
		"",
		p.Form.FieldsView(),
		"",
	}
	if p.Error != "" {
		parts = append(parts, Banner(p.Error, col), "")
	}
	parts = append(parts, p.Form.ActionView(ActionSubmit, col))
	if p.Pending {
		parts = append(parts, center(p.Spinner+" "+styles.MutedStyle.Render("Please wait...")))
	}
	parts = append(parts,
		"",
		styles.Divider("Or continue with", col),
		"",
		socialRow(p.Form, col),
		"",
		center(p.SwitchPrompt+" "+p.Form.ActionView(ActionSwitch, 0)),
	)

	left := lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	body := left
	if p.ShowBrand && width >= BrandBreakpoint {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, BrandPanel(p.BrandName, col, lipgloss.Height(left)))
	}
	card := styles.CardStyle.Render(body)

	page := []string{card}
	if p.Legal {
		page = append(page, "", lipgloss.PlaceHorizontal(lipgloss.Width(card), lipgloss.Center, legalFooter(p.Form)))
	}
	if p.Help != "" {
		page = append(page, "", lipgloss.PlaceHorizontal(lipgloss.Width(card), lipgloss.Center, p.Help))
	}
	out := lipgloss.JoinVertical(lipgloss.Center, page...)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// Banner renders the alert box shown above the submit button. msg is shown as is,
// wrapped to width.
func Banner(msg string, width int) string {
	inner := max(width-4, 1)
	return styles.BannerStyle.Width(width - 2).Render(wordwrap.String("! "+msg, inner))
}

// BrandPanel renders the static right-hand column.
func BrandPanel(name string, width, height int) string {
	mark := styles.BrandNameStyle.Render("◆")
	content := mark + "\n\n" + styles.BrandNameStyle.Render(name)
	return styles.BrandPanelStyle.Width(width).Height(height).Render(content)
}

func socialRow(f form.Model, col int) string {
	w := (col - 2) / 2
	buttons := make([]string, 0, len(auth.Providers))
	for _, p := range auth.Providers {
		buttons = append(buttons, f.ActionView(SocialAction(p), w))
	}
	return strings.Join(buttons, "  ")
}

func legalFooter(f form.Model) string {
	muted := styles.MutedStyle.Render
	return muted("By continuing, you agree to our ") +
		f.ActionView(ActionTerms, 0) +
		muted(" and ") +
		f.ActionView(ActionPrivacy, 0)
}
