package signin

import (
	"context"
	"os"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/auth/mock"
	"github.com/interviewfun/authtui/internal/flags"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/registration"
	"github.com/interviewfun/authtui/internal/ui/authpage"
	"github.com/interviewfun/authtui/internal/ui/form"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newView(t *testing.T, client auth.Client) Model {
	t.Helper()
	m := New(context.Background(), Deps{Client: client, Flags: flags.New(nil), BrandName: "interview fun ai", ShowBrand: true})
	t.Cleanup(m.Close)
	return m.SetSize(120, 40)
}

func submit(t *testing.T, m Model, email, password string) (Model, authpage.ResultMsg) {
	t.Helper()
	m.form = m.form.SetValue(registration.FieldEmail, email).SetValue(registration.FieldPassword, password)
	m, cmd := m.Update(form.ActionMsg{FormID: m.form.ID(), Key: authpage.ActionSubmit})
	require.NotNil(t, cmd)
	for _, c := range cmd().(tea.BatchMsg) {
		msg := c()
		if _, tick := msg.(spinner.TickMsg); tick {
			continue
		}
		r, ok := msg.(authpage.ResultMsg)
		require.True(t, ok)
		return m, r
	}
	t.Fatal("no result")
	return m, authpage.ResultMsg{}
}

func TestSubmit_SuccessNavigatesHome(t *testing.T) {
	client := mock.New()
	m := newView(t, client)

	m, r := submit(t, m, "ada@example.com", "pw1")
	require.True(t, m.State().Pending())
	require.Equal(t, auth.SignInEmailRequest{Email: "ada@example.com", Password: "pw1", CallbackURL: "/"}, client.Calls()[0].Req)

	m, cmd := m.Update(r)
	require.False(t, m.State().Pending())
	require.Equal(t, nav.NavigateMsg{Path: nav.Home}, cmd())
}

func TestSubmit_FailureShowsBanner(t *testing.T) {
	m := newView(t, mock.FailAll("Invalid email or password"))
	m, r := submit(t, m, "ada@example.com", "nope")

	m, cmd := m.Update(r)
	require.Nil(t, cmd)
	require.Equal(t, "Invalid email or password", m.State().ErrorMessage())
	require.Contains(t, ansi.Strip(zone.Scan(m.View())), "Invalid email or password")
}

func TestSubmit_Invalid(t *testing.T) {
	client := mock.New()
	m := newView(t, client)
	m.form = m.form.SetValue(registration.FieldEmail, "not-an-email")

	m, cmd := m.Update(form.ActionMsg{FormID: m.form.ID(), Key: authpage.ActionSubmit})
	require.Nil(t, cmd)
	require.Zero(t, client.CallCount("SignInEmail"))
	require.Equal(t, "Invalid email", m.Form().Error(registration.FieldEmail))
	require.Equal(t, "Password is required", m.Form().Error(registration.FieldPassword))
}

func TestSwitchLinkGoesToSignUp(t *testing.T) {
	m := newView(t, mock.New())
	_, cmd := m.Update(form.ActionMsg{FormID: m.form.ID(), Key: authpage.ActionSwitch})
	require.Equal(t, nav.NavigateMsg{Path: nav.SignUp}, cmd())
}

func TestResultFromOtherMountDropped(t *testing.T) {
	m := newView(t, mock.New())
	m, r := submit(t, m, "ada@example.com", "pw1")
	r.Instance = "other"
	m, cmd := m.Update(r)
	require.Nil(t, cmd)
	require.True(t, m.State().Pending())
}

func TestView(t *testing.T) {
	view := ansi.Strip(zone.Scan(newView(t, mock.New()).View()))
	for _, want := range []string{"Welcome back", "Sign in to your account", "Email", "Password", "Don't have an account?", "Sign up", "Or continue with", "GitHub"} {
		require.Contains(t, view, want)
	}
	require.NotContains(t, view, "Confirm Password")
}
