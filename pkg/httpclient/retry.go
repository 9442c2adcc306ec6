package httpclient

import (
	"net/http"
	"time"
)

// Retry policy for transient server errors. Mirrors the connection-level
// policy of the original client: 3 attempts total, exponential backoff
// with a 0.5s factor, retried only on 500/502/503/504.
const (
	retryAttempts      = 3
	retryBackoffFactor = 500 * time.Millisecond
)

var retryStatuses = map[int]bool{
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// retryTransport wraps a RoundTripper with status-based retries.
// Requests are safe to re-issue because every request in this tool is a
// bodyless GET or a form POST rebuilt via GetBody.
type retryTransport struct {
	next http.RoundTripper
}

func newRetryTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &retryTransport{next: next}
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(backoff(attempt)):
			}
			if req.Body != nil && req.GetBody != nil {
				body, bodyErr := req.GetBody()
				if bodyErr != nil {
					return nil, bodyErr
				}
				req.Body = body
			}
		}

		resp, err = t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if !retryStatuses[resp.StatusCode] || attempt == retryAttempts-1 {
			return resp, nil
		}
		// Close before the retry so the connection can be reused. The
		// last attempt's response is handed to the caller regardless of
		// status.
		_ = resp.Body.Close()
	}
	return resp, err
}

// backoff returns the sleep before the given attempt: factor * 2^(n-1).
func backoff(attempt int) time.Duration {
	return retryBackoffFactor << (attempt - 1)
}
