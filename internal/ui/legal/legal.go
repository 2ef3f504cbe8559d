// Package legal renders the Terms of Service and Privacy Policy pages.
package legal

import (
	"embed"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interviewfun/authtui/internal/keys"
	"github.com/interviewfun/authtui/internal/log"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/ui/markdown"
	"github.com/interviewfun/authtui/internal/ui/styles"
)

//go:embed content/*.md
var content embed.FS

const (
	maxWidth  = 88
	chromeRow = 6 // title, spacing, border, help
)

// Document returns the markdown for a legal route.
func Document(path string) (string, error) {
	var name string
	switch path {
	case nav.Terms:
		name = "content/terms.md"
	case nav.Privacy:
		name = "content/privacy.md"
	default:
		return "", fmt.Errorf("no legal document for %q", path)
	}
	b, err := content.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(b), nil
}

// Model is a scrollable markdown page.
type Model struct {
	path     string
	title    string
	doc      string
	style    string
	nav      nav.Navigator
	viewport viewport.Model
	help     help.Model
	width    int
	height   int
	err      error
}

// New returns the page for path, which must be nav.Terms or nav.Privacy.
// style is the glamour style name.
func New(path string, navigator nav.Navigator, style string) Model {
	if navigator == nil {
		navigator = nav.Router{}
	}
	m := Model{
		path:     path,
		title:    "Terms of Service",
		style:    style,
		nav:      navigator,
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	if path == nav.Privacy {
		m.title = "Privacy Policy"
	}
	m.doc, m.err = Document(path)
	if m.err != nil {
		log.ErrorErr(log.CatUI, "legal page", m.err)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Close is a no-op; the page starts no work.
func (m Model) Close() {}

// Path returns the route this page shows.
func (m Model) Path() string { return m.path }

// SetSize lays out the viewport and re-renders the document at the new
// width.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	w := min(width-4, maxWidth)
	h := max(height-chromeRow, 3)
	m.viewport.Width = w
	m.viewport.Height = h
	m.viewport.SetContent(m.render(w - 2))
	return m
}

func (m Model) render(width int) string {
	if m.err != nil {
		return styles.FieldErrorStyle.Render(m.err.Error())
	}
	r, err := markdown.New(max(width, 20), m.style)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer", err)
		return m.doc
	}
	out, err := r.Render(m.doc)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown render", err)
		return m.doc
	}
	return out
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Page.Back):
			return m, m.nav.Back()
		case key.Matches(msg, keys.Page.ScrollDown):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, keys.Page.ScrollUp):
			m.viewport.ScrollUp(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ScrollPercent reports how far down the page is scrolled.
func (m Model) ScrollPercent() float64 { return m.viewport.ScrollPercent() }

func (m Model) View() string {
	body := styles.CardStyle.Padding(0, 1).Render(m.viewport.View())
	out := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(m.title),
		"",
		body,
		styles.HelpStyle.Render(m.help.ShortHelpView(keys.PageHelp())),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, out)
	}
	return out
}
