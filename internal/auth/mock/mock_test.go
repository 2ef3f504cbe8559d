package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/interviewfun/authtui/internal/auth"
)

func TestClient_DefaultsToSuccess(t *testing.T) {
	c := New()
	require.NoError(t, c.SignUpEmail(context.Background(), auth.SignUpEmailRequest{Name: "Ada"}))
	require.NoError(t, c.SignInSocial(context.Background(), auth.SocialSignInRequest{Provider: auth.ProviderGoogle}))

	calls := c.Calls()
	require.Len(t, calls, 2)
	require.Equal(t, "SignUpEmail", calls[0].Method)
	require.Equal(t, auth.SignUpEmailRequest{Name: "Ada"}, calls[0].Req)
	require.Equal(t, 1, c.CallCount("SignInSocial"))
}

func TestFailAll(t *testing.T) {
	c := FailAll("Email already exists")
	err := c.SignUpEmail(context.Background(), auth.SignUpEmailRequest{})
	require.Equal(t, "Email already exists", auth.Message(err))
	err = c.SignInEmail(context.Background(), auth.SignInEmailRequest{})
	require.Equal(t, "Email already exists", auth.Message(err))
}

func TestLatency_HonorsCancellation(t *testing.T) {
	c := New()
	c.Latency = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.SignInEmail(ctx, auth.SignInEmailRequest{})
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, auth.IsNetwork(err))
}
