// Package authpage holds what the sign-up and sign-in views share: the
// per-mount session that guards against stale results, the auth result
// message, and the card layout with its brand panel and footer.
package authpage

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/log"
)

// Op names the auth call an attempt made.
type Op string

const (
	OpSignUpEmail  Op = "sign-up-email"
	OpSignInEmail  Op = "sign-in-email"
	OpSignInSocial Op = "sign-in-social"
)

// ResultMsg is the single completion of one attempt. Err is nil on success.
type ResultMsg struct {
	Instance string
	Attempt  string
	Op       Op
	Provider auth.Provider // set for OpSignInSocial
	Err      error
}

// Session ties a mounted view to the calls it starts. Closing it cancels
// those calls; results carry the session ID so a view can drop results
// addressed to an earlier mount.
type Session struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession starts a session derived from parent.
func NewSession(parent context.Context) Session {
	ctx, cancel := context.WithCancel(parent)
	return Session{id: uuid.NewString(), ctx: ctx, cancel: cancel}
}

// ID returns the instance ID.
func (s Session) ID() string { return s.id }

// Context is cancelled when the session closes.
func (s Session) Context() context.Context { return s.ctx }

// Close cancels in-flight calls. Safe to call more than once.
func (s Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Closed reports whether Close was called.
func (s Session) Closed() bool {
	return s.ctx == nil || s.ctx.Err() != nil
}

// Owns reports whether msg belongs to this session.
func (s Session) Owns(msg ResultMsg) bool {
	return msg.Instance == s.id
}

// Run returns a command that performs call and reports its outcome as a
// ResultMsg for attempt.
func (s Session) Run(attempt string, op Op, provider auth.Provider, call func(ctx context.Context) error) tea.Cmd {
	ctx, id := s.ctx, s.id
	return func() tea.Msg {
		log.Debug(log.CatAuth, "attempt started", "op", op, "attempt", attempt)
		err := call(ctx)
		if err != nil {
			log.Info(log.CatAuth, "attempt failed", "op", op, "attempt", attempt, "message", auth.Message(err))
		} else {
			log.Info(log.CatAuth, "attempt succeeded", "op", op, "attempt", attempt)
		}
		return ResultMsg{Instance: id, Attempt: attempt, Op: op, Provider: provider, Err: err}
	}
}
