// Package form is a configuration-driven form component: labeled text
// inputs followed by focusable actions (buttons and links).
//
// Focus moves through fields first, then actions, with Tab and Shift+Tab,
// wrapping at both ends. Enter on a field or Ctrl+S activates the submit
// action; Enter or a click on an action activates that action. Activation
// is reported as an ActionMsg so the owning view decides what happens.
//
//	f := form.New(form.Config{
//	    ID: "signup-" + instanceID,
//	    Fields: []form.FieldConfig{
//	        {Key: "email", Label: "Email", Placeholder: "Enter your email"},
//	        {Key: "password", Label: "Password", Secret: true},
//	    },
//	    Actions: []form.ActionConfig{
//	        {Key: "submit", Label: "Sign In", Kind: form.KindPrimary},
//	    },
//	    SubmitAction: "submit",
//	})
//
// The form never validates on its own. Owners run their schema on Values()
// and push messages back with SetErrors.
package form

// ActionKind selects how an action renders.
type ActionKind int

const (
	KindPrimary ActionKind = iota
	KindSecondary
	KindLink
)

// FieldConfig defines one text input.
type FieldConfig struct {
	Key         string // key in Values and SetErrors
	Label       string
	Placeholder string
	Secret      bool // mask input
	MaxLength   int  // 0 = unlimited
}

// ActionConfig defines one focusable action after the fields.
type ActionConfig struct {
	Key   string
	Label string
	Kind  ActionKind
}

// Config defines a form.
type Config struct {
	// ID prefixes click zones. Two forms on screen at once need distinct IDs.
	ID           string
	Fields       []FieldConfig
	Actions      []ActionConfig
	SubmitAction string // activated by Enter on a field and by Ctrl+S
	Width        int    // field width including borders; default 44
}

const defaultWidth = 44
