package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/api/auth", opts...)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com")
	require.Error(t, err)

	_, err = NewHTTPClient("://nope")
	require.Error(t, err)
}

func TestSignUpEmail_Success(t *testing.T) {
	var got SignUpEmailRequest
	var origin string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/sign-up/email", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		origin = r.Header.Get("Origin")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t","user":{"id":"u1"}}`))
	}))

	err := c.SignUpEmail(context.Background(), SignUpEmailRequest{
		Name: "Ada", Email: "ada@example.com", Password: "pw1", CallbackURL: "/",
	})
	require.NoError(t, err)
	require.Equal(t, SignUpEmailRequest{Name: "Ada", Email: "ada@example.com", Password: "pw1", CallbackURL: "/"}, got)
	require.NotEmpty(t, origin)
}

func TestSignUpEmail_ServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"USER_ALREADY_EXISTS","message":"Email already exists"}`))
	}))

	err := c.SignUpEmail(context.Background(), SignUpEmailRequest{Email: "ada@example.com"})
	require.Error(t, err)

	var ae *Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, http.StatusUnprocessableEntity, ae.Status)
	require.Equal(t, "USER_ALREADY_EXISTS", ae.Code)
	require.Equal(t, "Email already exists", Message(err))
}

func TestSignInEmail_ErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/sign-in/email", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := c.SignInEmail(context.Background(), SignInEmailRequest{Email: "a@b.co", Password: "x"})
	require.Equal(t, "Unauthorized", Message(err))
}

func TestPost_TransportErrorIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewHTTPClient(base)
	require.NoError(t, err)

	err = c.SignUpEmail(context.Background(), SignUpEmailRequest{})
	require.Error(t, err)
	require.Equal(t, NetworkErrorMessage, Message(err))
	require.True(t, IsNetwork(err))
}

func TestPost_ContextCancelled(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.SignInEmail(ctx, SignInEmailRequest{})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, NetworkErrorMessage, Message(err))
}

func TestWithTimeout(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}), WithTimeout(20*time.Millisecond))

	err := c.SignInEmail(context.Background(), SignInEmailRequest{})
	require.True(t, IsNetwork(err))
}

func TestWithHTTPClient_LeavesCallerClientAlone(t *testing.T) {
	base := &http.Client{}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), WithHTTPClient(base), WithTimeout(time.Second))

	require.NoError(t, c.SignInEmail(context.Background(), SignInEmailRequest{}))
	require.Zero(t, base.Timeout)
	require.Nil(t, base.Jar)
	require.NotSame(t, base, c.httpClient)
	require.Equal(t, time.Second, c.httpClient.Timeout)
	require.NotNil(t, c.httpClient.Jar)
}

func TestWithHTTPClient_NilKeepsDefault(t *testing.T) {
	c, err := NewHTTPClient("http://localhost:3000/api/auth", WithHTTPClient(nil), WithTimeout(time.Second))
	require.NoError(t, err)
	require.NotNil(t, c.httpClient)
	require.Equal(t, time.Second, c.httpClient.Timeout)
	require.NotNil(t, c.httpClient.Jar)
}

func TestSignInSocial_OpensBrowser(t *testing.T) {
	var got SocialSignInRequest
	var opened []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/sign-in/social", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"url":"https://accounts.google.com/o/oauth2/auth?x=1","redirect":true}`))
	}), WithBrowserOpener(BrowserOpenerFunc(func(u string) error {
		opened = append(opened, u)
		return nil
	})))

	err := c.SignInSocial(context.Background(), SocialSignInRequest{Provider: ProviderGoogle, CallbackURL: "/"})
	require.NoError(t, err)
	require.Equal(t, ProviderGoogle, got.Provider)
	require.Equal(t, "/", got.CallbackURL)
	require.Equal(t, []string{"https://accounts.google.com/o/oauth2/auth?x=1"}, opened)
}

func TestSignInSocial_BrowserFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"url":"https://github.com/login/oauth/authorize","redirect":true}`))
	}), WithBrowserOpener(BrowserOpenerFunc(func(string) error {
		return errors.New("xdg-open not found")
	})))

	err := c.SignInSocial(context.Background(), SocialSignInRequest{Provider: ProviderGitHub})
	require.Equal(t, "Could not open browser", Message(err))
}

func TestSignInSocial_NoURL(t *testing.T) {
	opened := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"redirect":false}`))
	}), WithBrowserOpener(BrowserOpenerFunc(func(string) error {
		opened = true
		return nil
	})))

	require.NoError(t, c.SignInSocial(context.Background(), SocialSignInRequest{Provider: ProviderGitHub}))
	require.False(t, opened)
}

func TestSignInSocial_InvalidProvider(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server should not be called")
	}))

	err := c.SignInSocial(context.Background(), SocialSignInRequest{Provider: "myspace"})
	require.Error(t, err)
}

func TestCookiesPersistAcrossCalls(t *testing.T) {
	var sawCookie bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/sign-up/email" {
			http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "abc", Path: "/"})
			return
		}
		ck, err := r.Cookie("session_token")
		sawCookie = err == nil && ck.Value == "abc"
	}))

	require.NoError(t, c.SignUpEmail(context.Background(), SignUpEmailRequest{}))
	require.NoError(t, c.SignInEmail(context.Background(), SignInEmailRequest{}))
	require.True(t, sawCookie)
}
