// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// Common bindings shared by every view.
var Common = struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Quit   key.Binding
	Help   key.Binding
}{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
}

// Form bindings. Letters are never bound here since every printable key
// goes to the focused input.
var Form = struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
}{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "prev"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
}

// Page bindings for read-only views (legal pages, home).
var Page = struct {
	Back       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	SignOut    key.Binding
}{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "q"),
		key.WithHelp("esc", "back"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("up", "k", "pgup"),
		key.WithHelp("↑/k", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("down", "j", "pgdown"),
		key.WithHelp("↓/j", "scroll down"),
	),
	SignOut: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "back to sign up"),
	),
}

// App bindings handled by the root model before any view.
var App = struct {
	ToggleLogs key.Binding
}{
	ToggleLogs: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "debug logs"),
	),
}

// FormHelp returns the bindings shown in a form view's help bar.
func FormHelp() []key.Binding {
	return []key.Binding{Form.Tab, Form.ShiftTab, Common.Enter, Form.Submit, Common.Quit}
}

// PageHelp returns the bindings shown on read-only pages.
func PageHelp() []key.Binding {
	return []key.Binding{Page.ScrollDown, Page.ScrollUp, Page.Back, Common.Quit}
}
