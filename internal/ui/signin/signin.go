// Package signin is the email and password sign-in view. It shares the
// card layout and social buttons with sign-up.
package signin

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/flags"
	"github.com/interviewfun/authtui/internal/keys"
	"github.com/interviewfun/authtui/internal/log"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/registration"
	"github.com/interviewfun/authtui/internal/ui/authpage"
	"github.com/interviewfun/authtui/internal/ui/form"
)

// Deps are the view's collaborators.
type Deps struct {
	Client      auth.Client
	Nav         nav.Navigator
	Flags       *flags.Registry
	CallbackURL string
	BrandName   string
	ShowBrand   bool
}

type Model struct {
	deps   Deps
	ctl    authpage.Controller
	form   form.Model
	help   help.Model
	width  int
	height int
}

func New(parent context.Context, deps Deps) Model {
	if deps.CallbackURL == "" {
		deps.CallbackURL = nav.Home
	}
	if deps.Nav == nil {
		deps.Nav = nav.Router{}
	}

	ctl := authpage.NewController(parent, authpage.ControllerConfig{
		Nav:                     deps.Nav,
		BlockSocialWhilePending: deps.Flags.Enabled(flags.FlagBlockSocialWhilePending),
	})

	log.Debug(log.CatNav, "mounted sign-in view", "instance", ctl.Session().ID())
	return Model{
		deps: deps,
		ctl:  ctl,
		help: help.New(),
		form: form.New(form.Config{
			ID: "signin-" + ctl.Session().ID(),
			Fields: []form.FieldConfig{
				{Key: registration.FieldEmail, Label: "Email", Placeholder: "Enter your email"},
				{Key: registration.FieldPassword, Label: "Password", Placeholder: "Enter your password", Secret: true},
			},
			Actions:      authpage.Actions("Sign In", "Sign up", deps.Flags.Enabled(flags.FlagLegalPages)),
			SubmitAction: authpage.ActionSubmit,
			Width:        authpage.ColumnWidth,
		}),
	}
}

func (m Model) Init() tea.Cmd { return m.form.Init() }

// Close unmounts the view.
func (m Model) Close() {
	m.ctl.Close()
	log.Debug(log.CatNav, "unmounted sign-in view", "instance", m.InstanceID())
}

func (m Model) InstanceID() string        { return m.ctl.Session().ID() }
func (m Model) State() registration.State { return m.ctl.State() }
func (m Model) Form() form.Model          { return m.form }

func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.form = m.form.SetWidth(authpage.ColumnWidthFor(width))
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case form.ActionMsg:
		if msg.FormID != m.form.ID() {
			return m, nil
		}
		return m.handleAction(msg.Key)
	case authpage.ResultMsg:
		var cmd tea.Cmd
		m.ctl, cmd = m.ctl.Resolve(msg)
		m.form = m.ctl.Sync(m.form)
		return m, cmd
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.ctl, cmd = m.ctl.Tick(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleAction(action string) (Model, tea.Cmd) {
	switch action {
	case authpage.ActionSubmit:
		return m.submit()
	case authpage.ActionSwitch:
		return m, m.deps.Nav.Push(nav.SignUp)
	case authpage.ActionTerms, authpage.ActionPrivacy:
		if !m.deps.Flags.Enabled(flags.FlagLegalPages) {
			return m, nil
		}
		return m, m.deps.Nav.Push(authpage.LegalRoute(action))
	}
	if p, ok := authpage.ProviderFor(action); ok {
		return m.social(p)
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	if !m.ctl.CanSubmit() {
		return m, nil
	}

	in := registration.SignInInput{
		Email:    m.form.Value(registration.FieldEmail),
		Password: m.form.Value(registration.FieldPassword),
	}
	errs := registration.ValidateSignIn(in)
	m.form = m.form.SetErrors(errs)
	if !errs.Valid() {
		m.form = m.form.FocusFirstError()
		return m, nil
	}

	req := auth.SignInEmailRequest{Email: in.Email, Password: in.Password, CallbackURL: m.deps.CallbackURL}
	client := m.deps.Client
	return m.begin(authpage.OpSignInEmail, "", func(ctx context.Context) error {
		return client.SignInEmail(ctx, req)
	})
}

func (m Model) social(p auth.Provider) (Model, tea.Cmd) {
	if !m.ctl.CanSocial() {
		return m, nil
	}
	req := auth.SocialSignInRequest{Provider: p, CallbackURL: m.deps.CallbackURL}
	client := m.deps.Client
	return m.begin(authpage.OpSignInSocial, p, func(ctx context.Context) error {
		return client.SignInSocial(ctx, req)
	})
}

func (m Model) begin(op authpage.Op, p auth.Provider, call func(context.Context) error) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.ctl, cmd = m.ctl.Begin(op, p, call)
	m.form = m.ctl.Sync(m.form)
	return m, cmd
}

func (m Model) View() string {
	return authpage.Render(authpage.Page{
		Title:        "Welcome back",
		Subtitle:     "Sign in to your account",
		Form:         m.form,
		Error:        m.ctl.State().ErrorMessage(),
		Pending:      m.ctl.State().Pending(),
		Spinner:      m.ctl.SpinnerView(),
		SwitchPrompt: "Don't have an account?",
		BrandName:    m.deps.BrandName,
		ShowBrand:    m.deps.ShowBrand,
		Legal:        m.deps.Flags.Enabled(flags.FlagLegalPages),
		Help:         m.help.ShortHelpView(keys.FormHelp()),
	}, m.width, m.height)
}
