// Package download implements the three Box download strategies. They
// share one streaming contract: bytes are written to the destination in
// fixed-size chunks, the progress callback fires after every chunk, and
// the session's cancelled flag is checked before each chunk is written.
// Cancellation leaves a partial file on disk and is reported as
// errors.ErrDownloadCancelled, distinct from any failure.
package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/fsutil"
	"github.com/glorpus-work/boxfetch/pkg/httpclient"
	"github.com/glorpus-work/boxfetch/pkg/model"
)

// chunkSize is the streaming granularity; it also bounds cancellation
// latency.
const chunkSize = 8 * 1024

// ProgressFunc receives cumulative progress after each chunk. A
// TotalBytes of 0 means the response declared no content length.
type ProgressFunc func(model.Progress)

// Scraper supplies the file-id fallback for the shared-file endpoint
// strategy when the URL itself carries no /file/<id> segment.
type Scraper interface {
	Scrape(ctx context.Context, sharedLink string) (*model.ItemDescriptor, error)
}

// Manager executes download strategies against a destination
// filesystem.
type Manager struct {
	client     *http.Client
	noRedirect *http.Client
	fs         afero.Fs
	baseURL    string
	scraper    Scraper
}

// Option customizes a Manager.
type Option func(*Manager)

// WithFs overrides the destination filesystem. Used by tests.
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(m *Manager) { m.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithScraper wires the scrape fallback for file-id discovery.
func WithScraper(s Scraper) Option {
	return func(m *Manager) { m.scraper = s }
}

// NewManager creates a download manager with the given request timeout.
func NewManager(timeout time.Duration, opts ...Option) *Manager {
	m := &Manager{
		client:     httpclient.New(timeout),
		noRedirect: httpclient.NewNoRedirect(timeout),
		fs:         afero.NewOsFs(),
		baseURL:    "https://api.box.com/2.0",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// streamResponse writes a response body to destPath in chunks, invoking
// progress after each one. The file is always closed, also on failure.
func (m *Manager) streamResponse(ses *Session, resp *http.Response, destPath string, progress ProgressFunc) error {
	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	f, err := m.fs.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(err, "could not open destination file")
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, chunkSize)
	var downloaded int64
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if ses != nil && ses.Cancelled() {
				return errors.ErrDownloadCancelled
			}
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				return errors.Wrap(writeErr, "could not write destination file")
			}
			downloaded += int64(n)
			if progress != nil {
				progress(model.Progress{BytesDownloaded: downloaded, TotalBytes: total})
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return errors.Wrap(readErr, "could not read response body")
		}
	}
}

// fetchStream issues a streaming GET and hands the 200 response to
// streamResponse. Any other status is a hard failure.
func (m *Manager) fetchStream(ctx context.Context, ses *Session, url, destPath string, progress ProgressFunc) error {
	req, err := httpclient.NewRequest(ctx, url)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "download request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(errors.ErrDownloadFailed, "unexpected status code: %d", resp.StatusCode)
	}
	return m.streamResponse(ses, resp, destPath, progress)
}
