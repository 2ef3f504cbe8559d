// Package nav is the route table and the navigation service views use to
// move between pages.
package nav

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Route paths.
const (
	Home    = "/"
	SignUp  = "/sign-up"
	SignIn  = "/sign-in"
	Terms   = "/terms"
	Privacy = "/privacy"
)

// Routes lists every known path.
var Routes = []string{Home, SignUp, SignIn, Terms, Privacy}

// Known reports whether path is a route.
func Known(path string) bool {
	return slices.Contains(Routes, path)
}

// NavigateMsg asks the app to mount the view for Path. Replace swaps the
// current history entry instead of pushing a new one.
type NavigateMsg struct {
	Path    string
	Replace bool
}

// BackMsg asks the app to return to the previous route.
type BackMsg struct{}

// Navigator is how views change routes. It returns a command so the
// transition happens inside the Update loop.
type Navigator interface {
	Push(path string) tea.Cmd
	Replace(path string) tea.Cmd
	Back() tea.Cmd
}

// Router is the default Navigator.
type Router struct{}

// Push navigates to path.
func (Router) Push(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// Replace navigates to path without growing history.
func (Router) Replace(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path, Replace: true} }
}

// Back returns to the previous route.
func (Router) Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// History is a route stack. The zero value is empty; Current on an empty
// History is Home.
type History struct {
	stack []string
}

// NewHistory returns a History positioned at start.
func NewHistory(start string) History {
	return History{stack: []string{start}}
}

// Current returns the active path.
func (h History) Current() string {
	if len(h.stack) == 0 {
		return Home
	}
	return h.stack[len(h.stack)-1]
}

// Len returns the number of entries.
func (h History) Len() int { return len(h.stack) }

// Apply returns the history after msg. Unknown paths are rejected.
func (h History) Apply(msg NavigateMsg) (History, error) {
	if !Known(msg.Path) {
		return h, fmt.Errorf("unknown route %q", msg.Path)
	}
	next := slices.Clone(h.stack)
	if msg.Replace && len(next) > 0 {
		next[len(next)-1] = msg.Path
	} else {
		next = append(next, msg.Path)
	}
	return History{stack: next}, nil
}

// Pop returns the history with the current entry removed. ok is false when
// there is nowhere to go back to.
func (h History) Pop() (History, bool) {
	if len(h.stack) <= 1 {
		return h, false
	}
	return History{stack: slices.Clone(h.stack[:len(h.stack)-1])}, true
}
