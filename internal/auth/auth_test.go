package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider("Google")
	require.NoError(t, err)
	require.Equal(t, ProviderGoogle, p)

	p, err = ParseProvider(" github ")
	require.NoError(t, err)
	require.Equal(t, ProviderGitHub, p)

	_, err = ParseProvider("facebook")
	require.Error(t, err)
}

func TestProvider_Label(t *testing.T) {
	require.Equal(t, "Google", ProviderGoogle.Label())
	require.Equal(t, "GitHub", ProviderGitHub.Label())
	require.False(t, Provider("x").Valid())
}

func TestMessage(t *testing.T) {
	require.Empty(t, Message(nil))
	require.Equal(t, "Email already exists", Message(NewError("Email already exists")))

	wrapped := fmt.Errorf("sign up: %w", &Error{Status: 422, Message: "Email already exists"})
	require.Equal(t, "Email already exists", Message(wrapped))

	require.Equal(t, "boom", Message(errors.New("boom")))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &Error{Message: NetworkErrorMessage, Err: cause}
	require.ErrorIs(t, err, cause)
	require.Equal(t, "Network error: dial tcp: refused", err.Error())
	require.True(t, IsNetwork(err))
	require.False(t, IsNetwork(&Error{Status: 500, Message: "Internal Server Error"}))
}
