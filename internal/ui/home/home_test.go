package home

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/ui/form"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestView(t *testing.T) {
	view := ansi.Strip(zone.Scan(New(nil, "interview fun ai").SetSize(100, 30).View()))
	assert.Contains(t, view, "You're all set")
	assert.Contains(t, view, "Welcome to interview fun ai")
	assert.Contains(t, view, "Back to sign up")
}

func TestEnterOnFocusedAction(t *testing.T) {
	m := New(nil, "x")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, form.ActionMsg{FormID: formID, Key: actionSignUp}, msg)

	_, cmd = m.Update(msg)
	assert.Equal(t, nav.NavigateMsg{Path: nav.SignUp, Replace: true}, cmd())
}

func TestSignInLink(t *testing.T) {
	m := New(nil, "x")
	_, cmd := m.Update(form.ActionMsg{FormID: formID, Key: actionSignIn})
	assert.Equal(t, nav.NavigateMsg{Path: nav.SignIn, Replace: true}, cmd())
}

func TestSignOutKey(t *testing.T) {
	_, cmd := New(nil, "x").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, nav.NavigateMsg{Path: nav.SignUp, Replace: true}, cmd())
}
