// Package markdown renders markdown for the terminal with glamour.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle drops glamour's document margin so pages line up with the
// rest of the layout.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer is a glamour renderer bound to a wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New returns a renderer wrapping at width. style is a glamour standard
// style name ("dark", "light", "notty"); empty means "dark".
//
// A fixed style is used instead of glamour.WithAutoStyle, which queries the
// terminal background and leaks the reply into Bubble Tea's input.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the wrap width.
func (r *Renderer) Width() int { return r.width }

// Style returns the glamour style name.
func (r *Renderer) Style() string { return r.style }

// Render renders md.
func (r *Renderer) Render(md string) (string, error) {
	return r.renderer.Render(md)
}
