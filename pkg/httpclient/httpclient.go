// Package httpclient constructs the HTTP clients used for Box requests.
// All clients share a fixed desktop browser User-Agent and a retrying
// transport; strategies that interpret 302 responses themselves use the
// redirect-suppressed variant.
package httpclient

import (
	"context"
	"net/http"
	"time"
)

// UserAgent is sent on every request. Box serves different markup to
// non-browser agents, so the scraper depends on this value.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// New returns an HTTP client that follows redirects and retries
// transient server errors.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newRetryTransport(http.DefaultTransport),
	}
}

// NewNoRedirect returns an HTTP client that reports redirect responses
// to the caller instead of following them.
func NewNoRedirect(timeout time.Duration) *http.Client {
	client := New(timeout)
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return client
}

// NewRequest builds a GET request with the fixed User-Agent applied.
func NewRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}
