package orchestrator

import (
	"context"

	"github.com/glorpus-work/boxfetch/pkg/download"
	"github.com/glorpus-work/boxfetch/pkg/model"
)

// MetadataResolver is the subset of the resolver used by the
// orchestrator.
type MetadataResolver interface {
	Scrape(ctx context.Context, sharedLink string) (*model.ItemDescriptor, error)
	SharedItem(ctx context.Context, sharedLink, password, accessToken string) (*model.ItemDescriptor, error)
}

// Downloader is the subset of the download manager used by the
// orchestrator: the three strategies, in trial order.
type Downloader interface {
	DownloadSharedFile(ctx context.Context, ses *download.Session, sharedLink, destPath string, progress download.ProgressFunc) error
	DownloadDirect(ctx context.Context, ses *download.Session, directURL, destPath string, progress download.ProgressFunc) error
	DownloadFile(ctx context.Context, ses *download.Session, fileID, sharedLink, password, destPath string, progress download.ProgressFunc) error
}

// Event represents a simple phase notification.
type Event struct {
	Phase string // resolving|resolved|downloading|strategy-failed|done|cancelled|error
	Msg   string
}

// Hooks carries callbacks for phase and progress events. Callbacks are
// invoked synchronously from the download goroutine; the caller decides
// whether to marshal them elsewhere.
type Hooks struct {
	OnEvent    func(Event)
	OnProgress download.ProgressFunc
}

// ResolveOptions control metadata resolution.
type ResolveOptions struct {
	Password    string
	AccessToken string
}

// DownloadOptions control download execution.
type DownloadOptions struct {
	// DestDir is the destination directory; the filename comes from the
	// item descriptor with collision-free renaming.
	DestDir  string
	Password string
}
