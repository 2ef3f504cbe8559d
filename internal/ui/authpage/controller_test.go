package authpage

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/registration"
	"github.com/interviewfun/authtui/internal/ui/form"
	"github.com/interviewfun/authtui/internal/ui/toaster"
)

func newController(t *testing.T, block bool) Controller {
	t.Helper()
	c := NewController(context.Background(), ControllerConfig{
		Nav:                     nav.Router{},
		BlockSocialWhilePending: block,
	})
	t.Cleanup(c.Close)
	return c
}

// begin starts an attempt and runs it, returning its completion.
func begin(t *testing.T, c Controller, op Op, p auth.Provider, err error) (Controller, ResultMsg) {
	t.Helper()
	c, cmd := c.Begin(op, p, func(context.Context) error { return err })
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, sub := range batch {
		if r, ok := sub().(ResultMsg); ok {
			return c, r
		}
	}
	t.Fatal("no result in batch")
	return c, ResultMsg{}
}

func TestController_EmailSuccessNavigatesOnce(t *testing.T) {
	c := newController(t, false)
	c, r := begin(t, c, OpSignUpEmail, "", nil)
	require.True(t, c.State().Pending())

	c, cmd := c.Resolve(r)
	require.NotNil(t, cmd)
	assert.Equal(t, nav.NavigateMsg{Path: nav.Home}, cmd())
	assert.Equal(t, registration.PhaseIdle, c.State().Phase())

	c, r = begin(t, c, OpSignInEmail, "", nil)
	_, cmd = c.Resolve(r)
	assert.Nil(t, cmd)
}

func TestController_SocialSuccessShowsToast(t *testing.T) {
	c := newController(t, false)
	c, r := begin(t, c, OpSignInSocial, auth.ProviderGitHub, nil)

	c, cmd := c.Resolve(r)
	require.NotNil(t, cmd)
	msg, ok := cmd().(toaster.ShowMsg)
	require.True(t, ok)
	assert.Contains(t, msg.Message, "GitHub")
	assert.False(t, c.State().Pending())
}

func TestController_FailureSetsBanner(t *testing.T) {
	c := newController(t, false)
	c, r := begin(t, c, OpSignUpEmail, "", auth.NewError("Email already exists"))

	c, cmd := c.Resolve(r)
	assert.Nil(t, cmd)
	assert.Equal(t, "Email already exists", c.State().ErrorMessage())
}

func TestController_RepeatedFailureLeavesStateUnchanged(t *testing.T) {
	c := newController(t, false)
	c, r := begin(t, c, OpSignUpEmail, "", errors.New("boom"))
	c, _ = c.Resolve(r)
	before := c.State()

	c, cmd := c.Resolve(r)
	assert.Nil(t, cmd)
	assert.Equal(t, before, c.State())
}

func TestController_DropsOtherMountsAndClosed(t *testing.T) {
	a := newController(t, false)
	b := newController(t, false)
	a, r := begin(t, a, OpSignUpEmail, "", nil)

	_, cmd := b.Resolve(r)
	assert.Nil(t, cmd)

	a.Close()
	a, cmd = a.Resolve(r)
	assert.Nil(t, cmd)
	assert.True(t, a.State().Pending())
}

func TestController_SocialPolicy(t *testing.T) {
	allow := newController(t, false)
	allow, _ = begin(t, allow, OpSignUpEmail, "", nil)
	assert.False(t, allow.CanSubmit())
	assert.True(t, allow.CanSocial())

	block := newController(t, true)
	assert.True(t, block.CanSocial())
	block, _ = begin(t, block, OpSignUpEmail, "", nil)
	assert.False(t, block.CanSocial())
}

func TestController_SyncDisablesActions(t *testing.T) {
	f := form.New(form.Config{
		ID:           "sync",
		Fields:       []form.FieldConfig{{Key: "email", Label: "Email"}},
		Actions:      Actions("Sign In", "Sign up", false),
		SubmitAction: ActionSubmit,
		Width:        ColumnWidth,
	})

	c := newController(t, true)
	c, _ = begin(t, c, OpSignUpEmail, "", nil)
	f = c.Sync(f)
	assert.True(t, f.Disabled(ActionSubmit))
	assert.True(t, f.Disabled(SocialAction(auth.ProviderGoogle)))

	c = newController(t, false)
	f = c.Sync(f)
	assert.False(t, f.Disabled(ActionSubmit))
	assert.False(t, f.Disabled(SocialAction(auth.ProviderGoogle)))
}
