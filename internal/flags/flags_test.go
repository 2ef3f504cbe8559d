package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "known flag defaults to its registered value",
			registry: New(nil),
			flag:     FlagLegalPages,
			expected: true,
		},
		{
			name:     "social blocking is off by default",
			registry: New(nil),
			flag:     FlagBlockSocialWhilePending,
			expected: false,
		},
		{
			name:     "config overrides default",
			registry: New(map[string]bool{FlagBlockSocialWhilePending: true}),
			flag:     FlagBlockSocialWhilePending,
			expected: true,
		},
		{
			name:     "unknown flag returns false",
			registry: New(map[string]bool{}),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagLegalPages,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_AllIsACopy(t *testing.T) {
	r := New(map[string]bool{"custom": true})
	all := r.All()
	all[FlagLegalPages] = false

	require.True(t, r.Enabled(FlagLegalPages))
	require.True(t, r.Enabled("custom"))
	require.Equal(t, []string{"custom", FlagLegalPages}, r.EnabledNames())
}

func TestNew_DoesNotMutateKnown(t *testing.T) {
	_ = New(map[string]bool{FlagLegalPages: false})
	require.True(t, Known[FlagLegalPages])
}
