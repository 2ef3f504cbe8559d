package auth

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/interviewfun/authtui/internal/tracing"
)

// TracedClient wraps a Client with one span per call.
type TracedClient struct {
	next   Client
	tracer trace.Tracer
}

// NewTracedClient returns next wrapped with spans from tracer.
func NewTracedClient(next Client, tracer trace.Tracer) *TracedClient {
	return &TracedClient{next: next, tracer: tracer}
}

// SignUpEmail implements Client.
func (c *TracedClient) SignUpEmail(ctx context.Context, req SignUpEmailRequest) error {
	ctx, span := c.tracer.Start(ctx, tracing.SpanSignUpEmail,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrEmailDomain, emailDomain(req.Email)),
			attribute.String(tracing.AttrCallbackURL, req.CallbackURL),
		))
	defer span.End()
	return record(span, c.next.SignUpEmail(ctx, req))
}

// SignInEmail implements Client.
func (c *TracedClient) SignInEmail(ctx context.Context, req SignInEmailRequest) error {
	ctx, span := c.tracer.Start(ctx, tracing.SpanSignInEmail,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrEmailDomain, emailDomain(req.Email)),
			attribute.String(tracing.AttrCallbackURL, req.CallbackURL),
		))
	defer span.End()
	return record(span, c.next.SignInEmail(ctx, req))
}

// SignInSocial implements Client.
func (c *TracedClient) SignInSocial(ctx context.Context, req SocialSignInRequest) error {
	ctx, span := c.tracer.Start(ctx, tracing.SpanSignInSocial,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrProvider, string(req.Provider)),
			attribute.String(tracing.AttrCallbackURL, req.CallbackURL),
		))
	defer span.End()
	return record(span, c.next.SignInSocial(ctx, req))
}

func record(span trace.Span, err error) error {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Status != 0 {
			span.SetAttributes(attribute.Int(tracing.AttrHTTPStatus, ae.Status))
		}
		if ae.Code != "" {
			span.SetAttributes(attribute.String(tracing.AttrErrorCode, ae.Code))
		}
	}
	span.SetAttributes(attribute.String(tracing.AttrErrorMessage, Message(err)))
	span.RecordError(err)
	span.SetStatus(codes.Error, Message(err))
	return err
}

// emailDomain keeps addresses out of traces.
func emailDomain(email string) string {
	_, domain, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}
	return domain
}
