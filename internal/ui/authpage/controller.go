package authpage

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/log"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/registration"
	"github.com/interviewfun/authtui/internal/ui/form"
	"github.com/interviewfun/authtui/internal/ui/styles"
	"github.com/interviewfun/authtui/internal/ui/toaster"
)

// Controller runs the auth calls of one mounted view and folds their
// results into a registration.State. Like the views it is a value type;
// every method returns the updated Controller.
type Controller struct {
	session     Session
	state       registration.State
	spinner     spinner.Model
	navigator   nav.Navigator
	successPath string
	blockSocial bool
	navigated   bool
}

// ControllerConfig configures NewController.
type ControllerConfig struct {
	Nav nav.Navigator
	// SuccessPath is pushed after the first successful email call.
	SuccessPath string
	// BlockSocialWhilePending refuses social sign-in while a call is in flight.
	BlockSocialWhilePending bool
}

// NewController starts a session derived from parent.
func NewController(parent context.Context, cfg ControllerConfig) Controller {
	if cfg.Nav == nil {
		cfg.Nav = nav.Router{}
	}
	if cfg.SuccessPath == "" {
		cfg.SuccessPath = nav.Home
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)
	return Controller{
		session:     NewSession(parent),
		spinner:     sp,
		navigator:   cfg.Nav,
		successPath: cfg.SuccessPath,
		blockSocial: cfg.BlockSocialWhilePending,
	}
}

// Session returns the mount's session.
func (c Controller) Session() Session { return c.session }

// State returns the submission state.
func (c Controller) State() registration.State { return c.state }

// SpinnerView renders the pending spinner frame.
func (c Controller) SpinnerView() string { return c.spinner.View() }

// CanSubmit reports whether the submit button may start a call.
func (c Controller) CanSubmit() bool { return !c.state.Pending() }

// CanSocial reports whether a social button may start a call.
func (c Controller) CanSocial() bool {
	return !(c.state.Pending() && c.blockSocial)
}

// Begin starts call as a new attempt and returns the command that runs it
// alongside the spinner.
func (c Controller) Begin(op Op, p auth.Provider, call func(ctx context.Context) error) (Controller, tea.Cmd) {
	attempt := registration.NewAttemptID()
	c.state = c.state.Begin(attempt)
	return c, tea.Batch(c.session.Run(attempt, op, p, call), c.spinner.Tick)
}

// Tick advances the spinner while a call is in flight.
func (c Controller) Tick(msg spinner.TickMsg) (Controller, tea.Cmd) {
	if !c.state.Pending() {
		return c, nil
	}
	var cmd tea.Cmd
	c.spinner, cmd = c.spinner.Update(msg)
	return c, cmd
}

// Resolve applies a completion. Results for another mount, results that
// arrive after Close and repeats of a completed attempt leave c unchanged.
// The first successful email call navigates to the success path; a
// successful social call only shows a toast.
func (c Controller) Resolve(msg ResultMsg) (Controller, tea.Cmd) {
	if !c.session.Owns(msg) {
		log.Debug(log.CatUI, "dropped result for another view", "attempt", msg.Attempt, "instance", msg.Instance)
		return c, nil
	}
	if c.session.Closed() {
		return c, nil
	}

	if msg.Err != nil {
		if next, ok := c.state.Fail(msg.Attempt, auth.Message(msg.Err)); ok {
			c.state = next
		}
		return c, nil
	}

	next, ok := c.state.Succeed(msg.Attempt)
	if !ok {
		return c, nil
	}
	c.state = next

	switch msg.Op {
	case OpSignUpEmail, OpSignInEmail:
		if c.navigated {
			return c, nil
		}
		c.navigated = true
		return c, c.navigator.Push(c.successPath)
	case OpSignInSocial:
		return c, toaster.Show("Continue with "+msg.Provider.Label()+" in your browser", toaster.StyleInfo)
	}
	return c, nil
}

// Sync mirrors the submission state onto f's actions.
func (c Controller) Sync(f form.Model) form.Model {
	f = f.SetDisabled(ActionSubmit, c.state.Pending())
	block := !c.CanSocial()
	for _, p := range auth.Providers {
		f = f.SetDisabled(SocialAction(p), block)
	}
	return f
}

// Close cancels in-flight calls.
func (c Controller) Close() { c.session.Close() }
