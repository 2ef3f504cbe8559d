package form

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/interviewfun/authtui/internal/keys"
)

// ActionMsg reports that an action was activated.
type ActionMsg struct {
	FormID string
	Key    string
}

// Model is the form state. Methods return a new Model.
type Model struct {
	cfg      Config
	inputs   []textinput.Model
	errors   map[string]string
	disabled map[string]bool
	focus    int // 0..len(fields)-1 fields, then actions
	width    int
}

// New builds a form focused on its first field.
func New(cfg Config) Model {
	m := Model{
		cfg:      cfg,
		inputs:   make([]textinput.Model, len(cfg.Fields)),
		errors:   map[string]string{},
		disabled: map[string]bool{},
		width:    cfg.Width,
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}
	for i, f := range cfg.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		if f.MaxLength > 0 {
			ti.CharLimit = f.MaxLength
		}
		if f.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.inputs[i] = ti
	}
	m = m.setWidth(m.width)
	return m.focusAt(0)
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ID returns the form's zone prefix.
func (m Model) ID() string { return m.cfg.ID }

// Update handles keys, clicks, and input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return m.handleClick(msg)
		}
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Tab):
		m = m.focusAt(m.focus + 1)
		return m, textinput.Blink
	case key.Matches(msg, keys.Form.ShiftTab):
		m = m.focusAt(m.focus - 1)
		return m, textinput.Blink
	case key.Matches(msg, keys.Form.Submit):
		return m, m.activate(m.cfg.SubmitAction)
	case key.Matches(msg, keys.Common.Enter):
		if a, ok := m.focusedAction(); ok {
			return m, m.activate(a.Key)
		}
		return m, m.activate(m.cfg.SubmitAction)
	}

	if _, ok := m.focusedAction(); ok {
		// Arrow keys move between actions like Tab does.
		switch {
		case key.Matches(msg, keys.Common.Down), key.Matches(msg, keys.Common.Right):
			return m.focusAt(m.focus + 1), textinput.Blink
		case key.Matches(msg, keys.Common.Up), key.Matches(msg, keys.Common.Left):
			return m.focusAt(m.focus - 1), textinput.Blink
		}
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handleClick(msg tea.MouseMsg) (Model, tea.Cmd) {
	for i, f := range m.cfg.Fields {
		if z := zone.Get(m.fieldZone(f.Key)); z != nil && z.InBounds(msg) {
			return m.focusAt(i), textinput.Blink
		}
	}
	for i, a := range m.cfg.Actions {
		if z := zone.Get(m.actionZone(a.Key)); z != nil && z.InBounds(msg) {
			m = m.focusAt(len(m.inputs) + i)
			return m, m.activate(a.Key)
		}
	}
	return m, nil
}

func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.inputs) {
		return m, nil
	}
	inputs := append([]textinput.Model(nil), m.inputs...)
	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	m.inputs = inputs
	return m, cmd
}

// activate returns the command reporting k, or nil for unknown or
// disabled actions.
func (m Model) activate(k string) tea.Cmd {
	if k == "" || m.disabled[k] || !m.hasAction(k) {
		return nil
	}
	id := m.cfg.ID
	return func() tea.Msg { return ActionMsg{FormID: id, Key: k} }
}

func (m Model) hasAction(k string) bool {
	for _, a := range m.cfg.Actions {
		if a.Key == k {
			return true
		}
	}
	return false
}

func (m Model) total() int { return len(m.inputs) + len(m.cfg.Actions) }

// focusAt moves focus to i, wrapping around.
func (m Model) focusAt(i int) Model {
	n := m.total()
	if n == 0 {
		return m
	}
	i = ((i % n) + n) % n

	inputs := append([]textinput.Model(nil), m.inputs...)
	for j := range inputs {
		if j == i {
			inputs[j].Focus()
		} else {
			inputs[j].Blur()
		}
	}
	m.inputs = inputs
	m.focus = i
	return m
}

func (m Model) focusedAction() (ActionConfig, bool) {
	i := m.focus - len(m.inputs)
	if i < 0 || i >= len(m.cfg.Actions) {
		return ActionConfig{}, false
	}
	return m.cfg.Actions[i], true
}

// Focused returns the key of the focused field or action.
func (m Model) Focused() string {
	if m.focus < len(m.inputs) {
		return m.cfg.Fields[m.focus].Key
	}
	if a, ok := m.focusedAction(); ok {
		return a.Key
	}
	return ""
}

// Focus moves focus to the field or action named k.
func (m Model) Focus(k string) Model {
	for i, f := range m.cfg.Fields {
		if f.Key == k {
			return m.focusAt(i)
		}
	}
	for i, a := range m.cfg.Actions {
		if a.Key == k {
			return m.focusAt(len(m.inputs) + i)
		}
	}
	return m
}

// Values returns every field's current text keyed by FieldConfig.Key.
func (m Model) Values() map[string]string {
	out := make(map[string]string, len(m.inputs))
	for i, f := range m.cfg.Fields {
		out[f.Key] = m.inputs[i].Value()
	}
	return out
}

// Value returns one field's text.
func (m Model) Value(k string) string {
	for i, f := range m.cfg.Fields {
		if f.Key == k {
			return m.inputs[i].Value()
		}
	}
	return ""
}

// SetValue replaces one field's text.
func (m Model) SetValue(k, v string) Model {
	for i, f := range m.cfg.Fields {
		if f.Key == k {
			inputs := append([]textinput.Model(nil), m.inputs...)
			inputs[i].SetValue(v)
			m.inputs = inputs
		}
	}
	return m
}

// SetErrors replaces the per-field messages. Nil clears them.
func (m Model) SetErrors(errs map[string]string) Model {
	next := make(map[string]string, len(errs))
	for k, v := range errs {
		next[k] = v
	}
	m.errors = next
	return m
}

// Error returns the message shown under field k.
func (m Model) Error(k string) string { return m.errors[k] }

// FocusFirstError focuses the first field, in display order, with a message.
func (m Model) FocusFirstError() Model {
	for i, f := range m.cfg.Fields {
		if m.errors[f.Key] != "" {
			return m.focusAt(i)
		}
	}
	return m
}

// SetDisabled enables or disables an action. Disabled actions render
// dimmed and ignore activation.
func (m Model) SetDisabled(k string, disabled bool) Model {
	next := make(map[string]bool, len(m.disabled)+1)
	for kk, v := range m.disabled {
		next[kk] = v
	}
	next[k] = disabled
	m.disabled = next
	return m
}

// Disabled reports whether action k is disabled.
func (m Model) Disabled(k string) bool { return m.disabled[k] }

// SetWidth sets the field width.
func (m Model) SetWidth(w int) Model {
	if w <= 0 {
		w = defaultWidth
	}
	return m.setWidth(w)
}

// Width returns the field width.
func (m Model) Width() int { return m.width }

func (m Model) setWidth(w int) Model {
	m.width = w
	inputs := append([]textinput.Model(nil), m.inputs...)
	for i := range inputs {
		inputs[i].Width = max(w-5, 1)
	}
	m.inputs = inputs
	return m
}

func (m Model) fieldZone(k string) string  { return m.cfg.ID + ":field:" + k }
func (m Model) actionZone(k string) string { return m.cfg.ID + ":action:" + k }
