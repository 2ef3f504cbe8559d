package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/interviewfun/authtui/internal/log"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 1 << 20

// Endpoint paths, relative to the base URL.
const (
	PathSignUpEmail  = "/sign-up/email"
	PathSignInEmail  = "/sign-in/email"
	PathSignInSocial = "/sign-in/social"
)

// HTTPClient is a Client for a better-auth style REST API.
type HTTPClient struct {
	baseURL    string
	origin     string
	httpClient *http.Client
	browser    BrowserOpener
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient bases requests on a copy of c. Its transport and cookie
// jar, if any, are kept; c itself is never modified. A nil c is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		if c == nil {
			return
		}
		clone := *c
		h.httpClient = &clone
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		h.httpClient.Timeout = d
	}
}

// WithBrowserOpener sets how social sign-in URLs are opened.
func WithBrowserOpener(b BrowserOpener) Option {
	return func(h *HTTPClient) {
		h.browser = b
	}
}

// NewHTTPClient returns a client for the API rooted at baseURL,
// e.g. http://localhost:3000/api/auth.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http or https, got %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	h := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		origin:     u.Scheme + "://" + u.Host,
		httpClient: &http.Client{Timeout: 15 * time.Second, Jar: jar},
		browser:    SystemBrowser{},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.httpClient.Jar == nil {
		h.httpClient.Jar = jar
	}
	return h, nil
}

// SignUpEmail implements Client.
func (h *HTTPClient) SignUpEmail(ctx context.Context, req SignUpEmailRequest) error {
	return h.post(ctx, PathSignUpEmail, req, nil)
}

// SignInEmail implements Client.
func (h *HTTPClient) SignInEmail(ctx context.Context, req SignInEmailRequest) error {
	return h.post(ctx, PathSignInEmail, req, nil)
}

// socialResponse is the server's answer to a social sign-in request.
type socialResponse struct {
	URL      string `json:"url"`
	Redirect bool   `json:"redirect"`
}

// SignInSocial implements Client. The server answers with the provider's
// authorization URL, which is handed to the browser. The flow completes
// in the browser, so success here means the flow was started.
func (h *HTTPClient) SignInSocial(ctx context.Context, req SocialSignInRequest) error {
	if !req.Provider.Valid() {
		return &Error{Message: fmt.Sprintf("Unsupported provider %q", req.Provider)}
	}

	var resp socialResponse
	if err := h.post(ctx, PathSignInSocial, req, &resp); err != nil {
		return err
	}
	if resp.URL == "" {
		return nil
	}
	if err := h.browser.Open(resp.URL); err != nil {
		log.ErrorErr(log.CatAuth, "open browser failed", err, "provider", req.Provider)
		return &Error{Message: "Could not open browser", Err: err}
	}
	log.Info(log.CatAuth, "opened authorization url", "provider", req.Provider)
	return nil
}

// errorBody is the server's JSON error shape.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", h.origin)

	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		log.Warn(log.CatAuth, "request failed", "path", path, "error", err)
		return &Error{Message: NetworkErrorMessage, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: NetworkErrorMessage, Err: err}
	}
	log.Debug(log.CatAuth, "response", "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) error {
	e := &Error{Status: status}
	var body errorBody
	if json.Unmarshal(data, &body) == nil {
		e.Code = body.Code
		e.Message = body.Message
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("Request failed with status %d", status)
	}
	return e
}
