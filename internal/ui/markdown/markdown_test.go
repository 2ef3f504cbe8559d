package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToDark(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err)
	require.Equal(t, 80, r.Width())
	require.Equal(t, "dark", r.Style())
}

func TestRender_Heading(t *testing.T) {
	r, err := New(60, "notty")
	require.NoError(t, err)

	out, err := r.Render("# Terms of Service\n\nBy creating an account you agree.")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "Terms of Service")
	require.Contains(t, plain, "By creating an account you agree.")
}

func TestRender_Wraps(t *testing.T) {
	r, err := New(30, "notty")
	require.NoError(t, err)

	out, err := r.Render(strings.Repeat("word ", 40))
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		require.LessOrEqual(t, lipgloss.Width(strings.TrimRight(ansi.Strip(line), " ")), 30)
	}
}
