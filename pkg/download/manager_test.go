package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/model"
)

func newTestManager(opts ...Option) (*Manager, afero.Fs) {
	fs := afero.NewMemMapFs()
	opts = append([]Option{WithFs(fs)}, opts...)
	return NewManager(10*time.Second, opts...), fs
}

func TestSession_CancelVisibility(t *testing.T) {
	ses := NewSession("tok")
	assert.Equal(t, "tok", ses.AccessToken())
	assert.False(t, ses.Cancelled())

	done := make(chan struct{})
	go func() {
		ses.Cancel()
		close(done)
	}()
	<-done
	assert.True(t, ses.Cancelled())

	ses.Reset()
	assert.False(t, ses.Cancelled())
}

func TestDownloadDirect(t *testing.T) {
	payload := bytes.Repeat([]byte("a"), 20*1024)

	tests := []struct {
		name          string
		declareLength bool
	}{
		{name: "known total", declareLength: true},
		{name: "unknown total", declareLength: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.declareLength {
					w.Header().Set("Content-Length", "20480")
				} else {
					// Chunked transfer encoding carries no total.
					w.Header().Set("Transfer-Encoding", "chunked")
				}
				_, _ = w.Write(payload)
			}))
			defer server.Close()

			m, fs := newTestManager()
			var reports []model.Progress
			err := m.DownloadDirect(context.Background(), NewSession(""), server.URL, "/dl/out.bin",
				func(p model.Progress) { reports = append(reports, p) })
			require.NoError(t, err)

			content, err := afero.ReadFile(fs, "/dl/out.bin")
			require.NoError(t, err)
			assert.Equal(t, payload, content)

			require.NotEmpty(t, reports)
			final := reports[len(reports)-1]
			assert.Equal(t, int64(len(payload)), final.BytesDownloaded)
			if tt.declareLength {
				assert.Equal(t, int64(len(payload)), final.TotalBytes)
			} else {
				assert.Zero(t, final.TotalBytes)
				_, known := final.Percent()
				assert.False(t, known)
			}
		})
	}
}

func TestDownloadDirect_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	m, fs := newTestManager()
	err := m.DownloadDirect(context.Background(), NewSession(""), server.URL, "/dl/out.bin", nil)
	require.ErrorIs(t, err, errors.ErrDownloadFailed)

	exists, err := afero.Exists(fs, "/dl/out.bin")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDownloadDirect_CancelMidStream(t *testing.T) {
	payload := bytes.Repeat([]byte("b"), 256*1024)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "262144")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	m, fs := newTestManager()
	ses := NewSession("")

	var bytesAtCancel int64
	err := m.DownloadDirect(context.Background(), ses, server.URL, "/dl/out.bin",
		func(p model.Progress) {
			if !ses.Cancelled() {
				bytesAtCancel = p.BytesDownloaded
				ses.Cancel()
			}
		})
	require.ErrorIs(t, err, errors.ErrDownloadCancelled)

	// The partial file stays on disk and holds exactly the bytes
	// written before the flag was observed.
	content, err := afero.ReadFile(fs, "/dl/out.bin")
	require.NoError(t, err)
	assert.Equal(t, bytesAtCancel, int64(len(content)))
	assert.Less(t, int64(len(content)), int64(len(payload)))
}

func TestDownloadSharedFile(t *testing.T) {
	payload := bytes.Repeat([]byte("c"), 12*1024)

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/index.php", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "box_download_shared_file", r.URL.Query().Get("rm"))
		assert.Equal(t, "tok123", r.URL.Query().Get("shared_name"))
		assert.Equal(t, "f_42", r.URL.Query().Get("file_id"))
		w.Header().Set("Location", server.URL+"/payload")
		w.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/payload", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "12288")
		_, _ = w.Write(payload)
	})

	m, fs := newTestManager()
	sharedLink := server.URL + "/s/tok123/file/42"

	var final model.Progress
	err := m.DownloadSharedFile(context.Background(), NewSession(""), sharedLink, "/dl/report.pdf",
		func(p model.Progress) { final = p })
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/dl/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, payload, content)
	assert.Equal(t, int64(len(payload)), final.BytesDownloaded)
	assert.Equal(t, int64(len(payload)), final.TotalBytes)
}

func TestDownloadSharedFile_Preconditions(t *testing.T) {
	m, _ := newTestManager()

	err := m.DownloadSharedFile(context.Background(), NewSession(""), "https://app.box.com/file/42", "/dl/x", nil)
	require.ErrorIs(t, err, errors.ErrNoSharedToken)

	err = m.DownloadSharedFile(context.Background(), NewSession(""), "https://app.box.com/s/tok", "/dl/x", nil)
	require.ErrorIs(t, err, errors.ErrNoFileID)
}

type staticScraper struct {
	desc *model.ItemDescriptor
	err  error
}

func (s staticScraper) Scrape(context.Context, string) (*model.ItemDescriptor, error) {
	return s.desc, s.err
}

func TestDownloadSharedFile_ScrapeFallbackForFileID(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/index.php", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "f_777", r.URL.Query().Get("file_id"))
		w.Header().Set("Location", server.URL+"/payload")
		w.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/payload", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("data"))
	})

	m, _ := newTestManager(WithScraper(staticScraper{desc: &model.ItemDescriptor{ID: "777"}}))
	err := m.DownloadSharedFile(context.Background(), NewSession(""), server.URL+"/s/tok", "/dl/x", nil)
	require.NoError(t, err)
}

func TestDownloadSharedFile_NoRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m, _ := newTestManager()
	err := m.DownloadSharedFile(context.Background(), NewSession(""), server.URL+"/s/tok/file/42", "/dl/x", nil)
	require.ErrorIs(t, err, errors.ErrDownloadFailed)
}

func TestDownloadFile_RedirectStream(t *testing.T) {
	payload := bytes.Repeat([]byte("d"), 10*1024)

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/files/42/content", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("boxapi"), "shared_link=")
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Location", server.URL+"/payload")
		w.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/payload", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	})

	m, fs := newTestManager(WithBaseURL(server.URL))
	err := m.DownloadFile(context.Background(), NewSession("tok"), "42", "https://app.box.com/s/abc", "", "/dl/out.bin", nil)
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/dl/out.bin")
	require.NoError(t, err)
	assert.Equal(t, payload, content)
}

func TestDownloadFile_BufferedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("inline content"))
	}))
	defer server.Close()

	m, fs := newTestManager(WithBaseURL(server.URL))
	var reports []model.Progress
	err := m.DownloadFile(context.Background(), NewSession(""), "42", "https://app.box.com/s/abc", "", "/dl/out.bin",
		func(p model.Progress) { reports = append(reports, p) })
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/dl/out.bin")
	require.NoError(t, err)
	assert.Equal(t, "inline content", string(content))

	// Progress jumps straight to complete for a buffered body.
	require.Len(t, reports, 1)
	assert.Equal(t, model.Progress{BytesDownloaded: 14, TotalBytes: 14}, reports[0])
}

func TestDownloadFile_HardFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	m, _ := newTestManager(WithBaseURL(server.URL))
	err := m.DownloadFile(context.Background(), NewSession(""), "42", "https://app.box.com/s/abc", "", "/dl/out.bin", nil)
	require.ErrorIs(t, err, errors.ErrDownloadFailed)
}
