// Package mock provides a scriptable in-memory auth.Client for tests and
// the playground.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/interviewfun/authtui/internal/auth"
)

// Call records one invocation.
type Call struct {
	Method string
	Req    any
}

// Client is an auth.Client whose behavior is set per method. A nil func
// succeeds. Latency delays every call and honors ctx cancellation.
type Client struct {
	SignUpEmailFunc  func(ctx context.Context, req auth.SignUpEmailRequest) error
	SignInEmailFunc  func(ctx context.Context, req auth.SignInEmailRequest) error
	SignInSocialFunc func(ctx context.Context, req auth.SocialSignInRequest) error
	Latency          time.Duration

	mu    sync.Mutex
	calls []Call
}

var _ auth.Client = (*Client)(nil)

// New returns a Client that succeeds on every call.
func New() *Client {
	return &Client{}
}

// FailAll returns a Client that fails every call with message.
func FailAll(message string) *Client {
	err := auth.NewError(message)
	return &Client{
		SignUpEmailFunc:  func(context.Context, auth.SignUpEmailRequest) error { return err },
		SignInEmailFunc:  func(context.Context, auth.SignInEmailRequest) error { return err },
		SignInSocialFunc: func(context.Context, auth.SocialSignInRequest) error { return err },
	}
}

// SignUpEmail implements auth.Client.
func (c *Client) SignUpEmail(ctx context.Context, req auth.SignUpEmailRequest) error {
	c.record("SignUpEmail", req)
	if err := c.wait(ctx); err != nil {
		return err
	}
	if c.SignUpEmailFunc != nil {
		return c.SignUpEmailFunc(ctx, req)
	}
	return nil
}

// SignInEmail implements auth.Client.
func (c *Client) SignInEmail(ctx context.Context, req auth.SignInEmailRequest) error {
	c.record("SignInEmail", req)
	if err := c.wait(ctx); err != nil {
		return err
	}
	if c.SignInEmailFunc != nil {
		return c.SignInEmailFunc(ctx, req)
	}
	return nil
}

// SignInSocial implements auth.Client.
func (c *Client) SignInSocial(ctx context.Context, req auth.SocialSignInRequest) error {
	c.record("SignInSocial", req)
	if err := c.wait(ctx); err != nil {
		return err
	}
	if c.SignInSocialFunc != nil {
		return c.SignInSocialFunc(ctx, req)
	}
	return nil
}

// Calls returns a copy of the recorded calls.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// CallCount returns how many times method was called.
func (c *Client) CallCount(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, call := range c.calls {
		if call.Method == method {
			n++
		}
	}
	return n
}

func (c *Client) record(method string, req any) {
	c.mu.Lock()
	c.calls = append(c.calls, Call{Method: method, Req: req})
	c.mu.Unlock()
}

func (c *Client) wait(ctx context.Context) error {
	if c.Latency <= 0 {
		return nil
	}
	t := time.NewTimer(c.Latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return &auth.Error{Message: auth.NetworkErrorMessage, Err: ctx.Err()}
	}
}
