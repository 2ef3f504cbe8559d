package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Hidden(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("Config reloaded", StyleInfo, time.Millisecond)
	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Config reloaded")
	assert.Equal(t, "Config reloaded", m.Message())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m, _ := New().Show("First", StyleInfo, time.Second)
	m, _ = m.Show("Second", StyleError, time.Second)
	assert.Contains(t, m.View(), "Second")
	assert.NotContains(t, m.View(), "First")
	assert.Contains(t, m.View(), "✗")
}

func TestDismiss(t *testing.T) {
	m, cmd := New().Show("Hello", StyleSuccess, time.Millisecond)
	msg := cmd()
	require.IsType(t, DismissMsg{}, msg)

	m = m.Update(msg)
	assert.False(t, m.Visible())
}

func TestDismiss_StaleIgnored(t *testing.T) {
	m, first := New().Show("First", StyleInfo, time.Millisecond)
	m, _ = m.Show("Second", StyleInfo, time.Second)

	m = m.Update(first())
	assert.True(t, m.Visible(), "dismiss for the first toast must not hide the second")
	assert.Equal(t, "Second", m.Message())
}

func TestOverlay(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)

	assert.Equal(t, bg, New().Overlay(bg, 40, 10))

	m, _ := New().Show("Saved", StyleSuccess, time.Second)
	out := m.Overlay(bg, 40, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[7], "Saved")
}
