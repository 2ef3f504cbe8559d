package registration

import (
	"slices"

	"github.com/google/uuid"
)

// Phase is the view-level state.
type Phase int

const (
	// PhaseIdle: nothing in flight, no error shown.
	PhaseIdle Phase = iota
	// PhasePending: at least one auth call is in flight.
	PhasePending
	// PhaseError: idle with an error message from the last failed call.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// NewAttemptID returns a unique ID for one delegated auth call.
func NewAttemptID() string {
	return uuid.NewString()
}

// State is the submission state of one mounted view. The zero value is Idle.
//
// State is immutable: every transition returns a new State. Pending is true
// while any attempt started with Begin has not completed.
type State struct {
	inflight     []string
	errorMessage string
}

// Pending reports whether a delegated call is in flight.
func (s State) Pending() bool { return len(s.inflight) > 0 }

// ErrorMessage returns the banner message, or "".
func (s State) ErrorMessage() string { return s.errorMessage }

// InFlight returns the number of calls awaiting completion.
func (s State) InFlight() int { return len(s.inflight) }

// Phase reports Idle, Pending or Error.
func (s State) Phase() Phase {
	switch {
	case s.Pending():
		return PhasePending
	case s.errorMessage != "":
		return PhaseError
	default:
		return PhaseIdle
	}
}

// Begin marks attemptID in flight and clears any previous error.
func (s State) Begin(attemptID string) State {
	next := State{inflight: append(slices.Clone(s.inflight), attemptID)}
	return next
}

// Succeed completes attemptID. ok is false for an unknown or already
// completed attempt, in which case s is returned unchanged.
func (s State) Succeed(attemptID string) (next State, ok bool) {
	next, ok = s.complete(attemptID)
	return next, ok
}

// Fail completes attemptID and records message for the banner. ok is false
// for an unknown or already completed attempt.
func (s State) Fail(attemptID, message string) (next State, ok bool) {
	next, ok = s.complete(attemptID)
	if ok {
		next.errorMessage = message
	}
	return next, ok
}

// ClearError drops the banner message without touching in-flight calls.
func (s State) ClearError() State {
	s.errorMessage = ""
	return s
}

func (s State) complete(attemptID string) (State, bool) {
	i := slices.Index(s.inflight, attemptID)
	if i < 0 {
		return s, false
	}
	return State{
		inflight:     slices.Delete(slices.Clone(s.inflight), i, i+1),
		errorMessage: s.errorMessage,
	}, true
}
