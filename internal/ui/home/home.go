// Package home is the landing page shown at "/" after a successful
// sign-up or sign-in.
package home

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interviewfun/authtui/internal/keys"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/ui/form"
	"github.com/interviewfun/authtui/internal/ui/styles"
)

const (
	formID       = "home"
	actionSignUp = "sign-up"
	actionSignIn = "sign-in"
	width        = 40
)

type Model struct {
	nav       nav.Navigator
	brandName string
	form      form.Model
	help      help.Model
	width     int
	height    int
}

func New(navigator nav.Navigator, brandName string) Model {
	if navigator == nil {
		navigator = nav.Router{}
	}
	return Model{
		nav:       navigator,
		brandName: brandName,
		help:      help.New(),
		form: form.New(form.Config{
			ID: formID,
			Actions: []form.ActionConfig{
				{Key: actionSignUp, Label: "Back to sign up", Kind: form.KindPrimary},
				{Key: actionSignIn, Label: "Sign in", Kind: form.KindLink},
			},
			Width: width,
		}),
	}
}

func (m Model) Init() tea.Cmd { return nil }
func (m Model) Close()        {}

func (m Model) SetSize(w, h int) Model {
	m.width, m.height = w, h
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Page.SignOut) {
			return m, m.nav.Replace(nav.SignUp)
		}
	case form.ActionMsg:
		switch msg.Key {
		case actionSignUp:
			return m, m.nav.Replace(nav.SignUp)
		case actionSignIn:
			return m, m.nav.Replace(nav.SignIn)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }
	body := lipgloss.JoinVertical(lipgloss.Left,
		center(styles.TitleStyle.Render("You're all set")),
		center(styles.SubtitleStyle.Render("Welcome to "+m.brandName)),
		"",
		m.form.ActionView(actionSignUp, width),
		"",
		center(m.form.ActionView(actionSignIn, 0)),
	)
	card := styles.CardStyle.Padding(1, 2).Render(body)
	out := lipgloss.JoinVertical(lipgloss.Center, card, "",
		m.help.ShortHelpView([]key.Binding{keys.Page.SignOut, keys.Form.Tab, keys.Common.Enter, keys.Common.Quit}))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}
