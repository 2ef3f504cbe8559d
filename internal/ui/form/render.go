package form

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/interviewfun/authtui/internal/ui/styles"
)

// FieldsView renders every field, in order, each followed by its message.
func (m Model) FieldsView() string {
	parts := make([]string, 0, len(m.cfg.Fields))
	for _, f := range m.cfg.Fields {
		parts = append(parts, m.FieldView(f.Key))
	}
	return strings.Join(parts, "\n")
}

// FieldView renders field k: a titled box around the input, and the
// field's message on the line below when there is one.
func (m Model) FieldView(k string) string {
	for i, f := range m.cfg.Fields {
		if f.Key != k {
			continue
		}
		box := styles.RenderFormSection(
			[]string{" " + m.inputs[i].View()},
			f.Label, "", m.width, m.focus == i,
		)
		out := zone.Mark(m.fieldZone(k), box)
		if msg := m.errors[k]; msg != "" {
			out += "\n" + styles.FieldErrorStyle.Render(" "+msg)
		}
		return out
	}
	return ""
}

// ActionView renders action k. width applies to buttons only; 0 sizes the
// button to its label.
func (m Model) ActionView(k string, width int) string {
	for i, a := range m.cfg.Actions {
		if a.Key != k {
			continue
		}
		focused := m.focus == len(m.inputs)+i
		disabled := m.disabled[k]

		var out string
		switch a.Kind {
		case KindLink:
			switch {
			case disabled:
				out = styles.MutedStyle.Render(a.Label)
			case focused:
				out = styles.FocusedLinkStyle.Render(a.Label)
			default:
				out = styles.LinkStyle.Render(a.Label)
			}
		case KindSecondary:
			out = styles.RenderButton(a.Label, styles.ButtonSecondary, focused, disabled, width)
		default:
			out = styles.RenderButton(a.Label, styles.ButtonPrimary, focused, disabled, width)
		}
		return zone.Mark(m.actionZone(k), out)
	}
	return ""
}
