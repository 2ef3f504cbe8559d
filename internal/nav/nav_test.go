package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouter_Push(t *testing.T) {
	var n Navigator = Router{}
	require.Equal(t, NavigateMsg{Path: Home}, n.Push(Home)())
	require.Equal(t, NavigateMsg{Path: SignIn, Replace: true}, n.Replace(SignIn)())
	require.Equal(t, BackMsg{}, n.Back()())
}

func TestKnown(t *testing.T) {
	for _, r := range Routes {
		require.True(t, Known(r), r)
	}
	require.False(t, Known("/admin"))
}

func TestHistory(t *testing.T) {
	h := NewHistory(SignUp)
	require.Equal(t, SignUp, h.Current())

	h, err := h.Apply(NavigateMsg{Path: Terms})
	require.NoError(t, err)
	require.Equal(t, Terms, h.Current())
	require.Equal(t, 2, h.Len())

	h, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, SignUp, h.Current())

	_, ok = h.Pop()
	require.False(t, ok, "cannot pop the last entry")
}

func TestHistory_Replace(t *testing.T) {
	h := NewHistory(SignUp)
	h, err := h.Apply(NavigateMsg{Path: Home, Replace: true})
	require.NoError(t, err)
	require.Equal(t, Home, h.Current())
	require.Equal(t, 1, h.Len())
}

func TestHistory_UnknownRoute(t *testing.T) {
	h := NewHistory(SignUp)
	next, err := h.Apply(NavigateMsg{Path: "/nope"})
	require.Error(t, err)
	require.Equal(t, h, next)
}

func TestHistory_Immutable(t *testing.T) {
	h := NewHistory(SignUp)
	_, _ = h.Apply(NavigateMsg{Path: Terms})
	require.Equal(t, 1, h.Len())
}

func TestHistory_ZeroValue(t *testing.T) {
	var h History
	require.Equal(t, Home, h.Current())
}
