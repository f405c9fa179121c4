// Package http provides the HTTP-facing implementations for documind: a
// Loader that fetches pages with a desktop-browser identity, and the JSON
// API server.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/documind"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent is a desktop Chrome identity. Some sites refuse requests
// from unknown or bot agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

// Ensure Loader implements documind.Loader at compile time.
var _ documind.Loader = (*Loader)(nil)

// Loader retrieves HTML content from URLs using plain HTTP GET requests.
// It does not retry and follows redirects with the client default policy.
type Loader struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the timeout for HTTP requests. Zero disables the timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		l.userAgent = ua
	}
}

// NewLoader creates a new Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// Load retrieves the HTML content from the given URL.
func (l *Loader) Load(ctx context.Context, url string) (*documind.RawPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, documind.Errorf(documind.EINVALID, "Invalid url")
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, documind.Errorf(documind.EFETCH, "Failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, documind.NewFetchError(resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, documind.Errorf(documind.EFETCH, "Failed to read response body: %v", err)
	}

	return &documind.RawPage{HTML: string(body), URL: url}, nil
}
