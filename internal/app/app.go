// Package app contains the root application model: the router that mounts
// one view per route, plus the toaster and debug log overlay that sit on
// top of every view.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/config"
	"github.com/interviewfun/authtui/internal/flags"
	"github.com/interviewfun/authtui/internal/keys"
	"github.com/interviewfun/authtui/internal/log"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/pubsub"
	"github.com/interviewfun/authtui/internal/ui/home"
	"github.com/interviewfun/authtui/internal/ui/legal"
	"github.com/interviewfun/authtui/internal/ui/logoverlay"
	"github.com/interviewfun/authtui/internal/ui/signin"
	"github.com/interviewfun/authtui/internal/ui/signup"
	"github.com/interviewfun/authtui/internal/ui/styles"
	"github.com/interviewfun/authtui/internal/ui/toaster"
)

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

// Options configure a Model.
type Options struct {
	Client auth.Client
	Config config.Config
	Start  string // first route; nav.SignUp when empty
	Debug  bool   // enables the ctrl+x log overlay
}

// Model is the root application state.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	client  auth.Client
	cfg     config.Config
	flags   *flags.Registry
	history nav.History
	current page

	width  int
	height int

	toaster     toaster.Model
	debug       bool
	logOverlay  logoverlay.Model
	logListener *pubsub.Listener[string]
}

// New builds the root model and mounts the start route.
func New(opts Options) Model {
	start := opts.Start
	if !nav.Known(start) {
		start = nav.SignUp
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		ctx:        ctx,
		cancel:     cancel,
		client:     opts.Client,
		cfg:        opts.Config,
		flags:      flags.New(opts.Config.Flags),
		history:    nav.NewHistory(start),
		toaster:    toaster.New(),
		debug:      opts.Debug,
		logOverlay: logoverlay.New(),
	}
	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}
	m.current = m.build(start)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.current.Init()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Route returns the active path.
func (m Model) Route() string { return m.history.Current() }

// Flags returns the active feature flags.
func (m Model) Flags() *flags.Registry { return m.flags }

// build creates the view for path. Every call is a fresh mount with its
// own session.
func (m Model) build(path string) page {
	var p page
	switch path {
	case nav.SignIn:
		p = signinPage{signin.New(m.ctx, signin.Deps{
			Client:      m.client,
			Flags:       m.flags,
			CallbackURL: m.cfg.Auth.CallbackURL,
			BrandName:   m.cfg.UI.BrandName,
			ShowBrand:   m.cfg.UI.ShowBrandPanel,
		})}
	case nav.Terms, nav.Privacy:
		p = legalPage{legal.New(path, nil, m.cfg.UI.MarkdownStyle)}
	case nav.Home:
		p = homePage{home.New(nil, m.cfg.UI.BrandName)}
	default:
		p = signupPage{signup.New(m.ctx, signup.Deps{
			Client:      m.client,
			Flags:       m.flags,
			CallbackURL: m.cfg.Auth.CallbackURL,
			BrandName:   m.cfg.UI.BrandName,
			ShowBrand:   m.cfg.UI.ShowBrandPanel,
		})}
	}
	if m.width > 0 {
		p = p.resize(m.width, m.height)
	}
	return p
}

// mount unmounts the current view and mounts the history's current route.
func (m Model) mount() (Model, tea.Cmd) {
	path := m.history.Current()
	if m.current != nil {
		m.current.Close()
	}
	m.current = m.build(path)
	log.Info(log.CatNav, "navigated", "path", path, "depth", m.history.Len())
	return m, m.current.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.current = m.current.resize(msg.Width, msg.Height)
		m.logOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		m.logOverlay.Refresh()
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case tea.KeyMsg:
		if m.debug && key.Matches(msg, keys.App.ToggleLogs) {
			m.logOverlay.Toggle()
			return m, nil
		}
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}
		if key.Matches(msg, keys.Common.Quit) {
			m.current.Close()
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			return m, nil
		}

	case logoverlay.CloseMsg:
		return m, nil

	case nav.NavigateMsg:
		next, err := m.history.Apply(msg)
		if err != nil {
			log.Warn(log.CatNav, "navigation rejected", "path", msg.Path, "error", err)
			var cmd tea.Cmd
			m.toaster, cmd = m.toaster.Show("Page not found", toaster.StyleError, toaster.DefaultDuration)
			return m, cmd
		}
		m.history = next
		return m.mount()

	case nav.BackMsg:
		prev, ok := m.history.Pop()
		if !ok {
			return m, nil
		}
		m.history = prev
		return m.mount()

	case toaster.ShowMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Message, msg.Style, toaster.DefaultDuration)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config)
	}

	var cmd tea.Cmd
	m.current, cmd = m.current.update(msg)
	return m, cmd
}

// applyConfig takes effect immediately for the theme. Flags and UI
// settings apply from the next mount so a half-filled form is not reset.
func (m Model) applyConfig(cfg config.Config) (Model, tea.Cmd) {
	if err := config.Validate(cfg); err != nil {
		log.Warn(log.CatConfig, "ignoring invalid reloaded config", "error", err)
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show("Config not reloaded: "+err.Error(), toaster.StyleError, toaster.DefaultDuration)
		return m, cmd
	}
	m.cfg = cfg
	m.flags = flags.New(cfg.Flags)
	styles.ApplyTheme(cfg.Theme)
	log.Info(log.CatConfig, "config reloaded", "flags", m.flags.EnabledNames())

	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show("Config reloaded", toaster.StyleSuccess, toaster.DefaultDuration)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.current.View()
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.debug && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return zone.Scan(view)
}

// Close unmounts the current view and stops the log listener.
func (m Model) Close() {
	if m.current != nil {
		m.current.Close()
	}
	m.cancel()
}
