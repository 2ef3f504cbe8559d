// Package signup is the registration view: name, email, password and
// confirmation, validated before account creation is delegated to the
// auth client, plus Google and GitHub sign-in.
package signup

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
	CallbackURL string // sent with every request; "/" when empty
	BrandName   string
	ShowBrand   bool
}

// Model is the registration view. One Model is one mount: New starts a
// session and Close ends it.
type Model struct {
	deps   Deps
	ctl    authpage.Controller
	form   form.Model
	help   help.Model
	width  int
	height int
}

// New mounts the view. Calls it starts are cancelled when parent is done
// or Close is called.
func New(parent context.Context, deps Deps) Model {
	if deps.CallbackURL == "" {
		deps.CallbackURL = nav.Home
	}
	if deps.Nav == nil {
		deps.Nav = nav.Router{}
	}

	ctl := authpage.NewController(parent, authpage.ControllerConfig{
		Nav:                     deps.Nav,
		SuccessPath:             nav.Home,
		BlockSocialWhilePending: deps.Flags.Enabled(flags.FlagBlockSocialWhilePending),
	})
	id := ctl.Session().ID()

	m := Model{
		deps: deps,
		ctl:  ctl,
		help: help.New(),
		form: form.New(form.Config{
			ID: "signup-" + id,
			Fields: []form.FieldConfig{
				{Key: registration.FieldName, Label: "Name", Placeholder: "Enter your name"},
				{Key: registration.FieldEmail, Label: "Email", Placeholder: "Enter your email"},
				{Key: registration.FieldPassword, Label: "Password", Placeholder: "Enter your password", Secret: true},
				{Key: registration.FieldConfirmPassword, Label: "Confirm Password", Placeholder: "Confirm your password", Secret: true},
			},
			Actions:      authpage.Actions("Sign In", "Sign in", deps.Flags.Enabled(flags.FlagLegalPages)),
			SubmitAction: authpage.ActionSubmit,
			Width:        authpage.ColumnWidth,
		}),
	}
	log.Debug(log.CatNav, "mounted sign-up view", "instance", id)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Close unmounts the view, cancelling in-flight calls.
func (m Model) Close() {
	m.ctl.Close()
	log.Debug(log.CatNav, "unmounted sign-up view", "instance", m.InstanceID())
}

// InstanceID identifies this mount.
func (m Model) InstanceID() string { return m.ctl.Session().ID() }

// State returns the submission state.
func (m Model) State() registration.State { return m.ctl.State() }

// Form returns the underlying form.
func (m Model) Form() form.Model { return m.form }

// SetSize records the screen size and resizes the form column.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.form = m.form.SetWidth(authpage.ColumnWidthFor(width))
	return m
}

// Update handles input, form actions and auth results.
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
		return m, m.deps.Nav.Push(nav.SignIn)
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

// submit validates the form and, when valid, delegates account creation.
// Nothing is sent while a call is already in flight.
func (m Model) submit() (Model, tea.Cmd) {
	if !m.ctl.CanSubmit() {
		return m, nil
	}

	values := m.form.Values()
	in := registration.Input{
		Name:            values[registration.FieldName],
		Email:           values[registration.FieldEmail],
		Password:        values[registration.FieldPassword],
		ConfirmPassword: values[registration.FieldConfirmPassword],
	}
	errs := registration.Validate(in)
	m.form = m.form.SetErrors(errs)
	if !errs.Valid() {
		m.form = m.form.FocusFirstError()
		log.Debug(log.CatUI, "sign-up form invalid", "fields", len(errs))
		return m, nil
	}

	req := auth.SignUpEmailRequest{
		Name:        in.Name,
		Email:       in.Email,
		Password:    in.Password,
		CallbackURL: m.deps.CallbackURL,
	}
	client := m.deps.Client
	return m.begin(authpage.OpSignUpEmail, "", func(ctx context.Context) error {
		return client.SignUpEmail(ctx, req)
	})
}

// social starts an OAuth sign-in. It clears any banner and marks the view
// pending even when another call is in flight, unless the
// block-social-while-pending flag is on.
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

// View renders the view.
func (m Model) View() string {
	return authpage.Render(authpage.Page{
		Title:        "Let's get started",
		Subtitle:     "Create your account",
		Form:         m.form,
		Error:        m.ctl.State().ErrorMessage(),
		Pending:      m.ctl.State().Pending(),
		Spinner:      m.ctl.SpinnerView(),
		SwitchPrompt: "Already have an account?",
		BrandName:    m.deps.BrandName,
		ShowBrand:    m.deps.ShowBrand,
		Legal:        m.deps.Flags.Enabled(flags.FlagLegalPages),
		Help:         m.help.ShortHelpView(keys.FormHelp()),
	}, m.width, m.height)
}
