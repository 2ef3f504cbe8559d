package tracing

// Span names, one per auth client operation.
const (
	SpanSignUpEmail  = "auth.sign_up.email"
	SpanSignInEmail  = "auth.sign_in.email"
	SpanSignInSocial = "auth.sign_in.social"
)

// Span attribute keys.
const (
	AttrProvider     = "auth.provider"
	AttrCallbackURL  = "auth.callback_url"
	AttrEmailDomain  = "auth.email.domain"
	AttrHTTPStatus   = "http.response.status_code"
	AttrErrorCode    = "auth.error.code"
	AttrErrorMessage = "error.message"
)

// Span events.
const (
	EventBrowserOpened = "browser.opened"
)
