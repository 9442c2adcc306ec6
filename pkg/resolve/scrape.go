package resolve

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/httpclient"
	"github.com/glorpus-work/boxfetch/pkg/model"
)

// Patterns for the JSON fragments Box embeds in the shared-link page
// script data. The first occurrence wins.
var (
	nameRe    = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)
	typedIDRe = regexp.MustCompile(`"typedID"\s*:\s*"([fd])_(\d+)"`)
	sizeRe    = regexp.MustCompile(`"size"\s*:\s*(\d+)`)
	dlURLRe   = regexp.MustCompile(`"download_url"\s*:\s*"([^"]+)"`)
)

// Scrape fetches the shared-link page as HTML and extracts item fields
// by pattern search. Any subset of fields may be present; a descriptor
// is returned as long as at least one pattern matched. A non-200 page
// or zero matches yields errors.ErrNoInfo, an expected outcome distinct
// from a transport fault.
func (r *Resolver) Scrape(ctx context.Context, sharedLink string) (*model.ItemDescriptor, error) {
	req, err := httpclient.NewRequest(ctx, sharedLink)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch shared link page")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ErrNoInfo
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read shared link page")
	}

	desc, ok := scrapePage(html)
	if !ok {
		return nil, errors.ErrNoInfo
	}
	desc.SharedLink = sharedLink
	return desc, nil
}

// scrapePage extracts whatever fields the page holds. The second return
// is false when nothing matched.
func scrapePage(html []byte) (*model.ItemDescriptor, bool) {
	desc := &model.ItemDescriptor{}
	found := false

	if m := nameRe.FindSubmatch(html); m != nil {
		desc.Name = string(m[1])
		found = true
	}
	if m := typedIDRe.FindSubmatch(html); m != nil {
		if string(m[1]) == "f" {
			desc.Type = model.TypeFile
		} else {
			desc.Type = model.TypeFolder
		}
		desc.ID = string(m[2])
		found = true
	}
	if m := sizeRe.FindSubmatch(html); m != nil {
		if size, err := strconv.ParseInt(string(m[1]), 10, 64); err == nil {
			desc.Size = size
			found = true
		}
	}
	if m := dlURLRe.FindSubmatch(html); m != nil {
		desc.DirectDownloadURL = string(m[1])
		found = true
	}

	return desc, found
}
