// Package boxurl extracts identifiers from Box shared-link URLs. All
// functions are pure string matching: malformed input yields empty
// results, never an error.
package boxurl

import (
	"net/url"
	"regexp"
)

// Kind classifies what a Box URL points at.
type Kind string

// URL kinds.
const (
	// KindFile is a URL containing a /file/<digits> segment.
	KindFile Kind = "file"
	// KindFolder is a URL containing a /folder/<digits> segment.
	KindFolder Kind = "folder"
	// KindSharedLink is any other URL; resolution is deferred to the
	// metadata resolver.
	KindSharedLink Kind = "shared_link"
)

var (
	fileRe   = regexp.MustCompile(`/file/(\d+)`)
	folderRe = regexp.MustCompile(`/folder/(\d+)`)
	tokenRe  = regexp.MustCompile(`/s/([a-zA-Z0-9]+)`)
)

// Parse classifies a Box URL and extracts its identifier. For file and
// folder URLs the identifier is the numeric id; otherwise the original
// URL is returned as an unresolved generic shared link.
func Parse(rawURL string) (string, Kind) {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}

	if m := fileRe.FindStringSubmatch(path); m != nil {
		return m[1], KindFile
	}
	if m := folderRe.FindStringSubmatch(path); m != nil {
		return m[1], KindFolder
	}
	return rawURL, KindSharedLink
}

// SharedToken returns the alphanumeric shared-link token following /s/,
// or "" when the URL has none.
func SharedToken(rawURL string) string {
	if m := tokenRe.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// FileID returns the numeric file id following /file/, or "" when the
// URL has none.
func FileID(rawURL string) string {
	if m := fileRe.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// Host returns the URL's host, or "" for unparseable input.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
