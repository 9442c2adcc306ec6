// Package resolve determines the name, type, and size of a Box shared
// item. Two independent paths exist: scraping the shared-link page for
// embedded JSON fragments, and the authenticated shared_items API. The
// orchestrator decides which to try and in what order.
package resolve

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/glorpus-work/boxfetch/pkg/auth"
	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/httpclient"
	"github.com/glorpus-work/boxfetch/pkg/model"
)

// DefaultAPIBaseURL is the Box API v2 base URL.
const DefaultAPIBaseURL = "https://api.box.com/2.0"

// Resolver fetches item metadata for shared links.
type Resolver struct {
	client  *http.Client
	baseURL string
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(r *Resolver) { r.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) { r.client = client }
}

// New creates a Resolver with the given request timeout.
func New(timeout time.Duration, opts ...Option) *Resolver {
	r := &Resolver{
		client:  httpclient.New(timeout),
		baseURL: DefaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// sharedItemResponse is the subset of the shared_items payload we use.
type sharedItemResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// SharedItem resolves a shared link through GET /shared_items. The
// shared link (and password, when given) travel in the boxapi header; an
// access token, when present, is sent as a Bearer credential.
//
// Status taxonomy: 401 -> ErrAuthRequired, 403 with "password" in the
// body -> ErrPasswordRequired, other 403 -> ErrAccessDenied, any other
// non-200 -> ErrResolveFailed.
func (r *Resolver) SharedItem(ctx context.Context, sharedLink, password, accessToken string) (*model.ItemDescriptor, error) {
	req, err := httpclient.NewRequest(ctx, r.baseURL+"/shared_items")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	auths := []auth.Authenticator{auth.SharedLinkAuth{SharedLink: sharedLink, Password: password}}
	if accessToken != "" {
		auths = append(auths, auth.BearerAuth{Token: accessToken})
	}
	if err := auth.ApplyAll(req, auths...); err != nil {
		return nil, errors.Wrap(err, "failed to apply authentication")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "shared_items request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue processing.
	case http.StatusUnauthorized:
		return nil, errors.ErrAuthRequired
	case http.StatusForbidden:
		body, _ := io.ReadAll(resp.Body)
		if strings.Contains(strings.ToLower(string(body)), "password") {
			return nil, errors.ErrPasswordRequired
		}
		return nil, errors.ErrAccessDenied
	default:
		return nil, errors.Wrapf(errors.ErrResolveFailed, "unexpected status code: %d", resp.StatusCode)
	}

	var item sharedItemResponse
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, errors.Wrap(err, "failed to decode shared_items response")
	}

	desc := &model.ItemDescriptor{
		ID:         item.ID,
		Type:       item.Type,
		Name:       item.Name,
		Size:       item.Size,
		SharedLink: sharedLink,
	}
	if desc.Type == "" {
		desc.Type = model.DefaultType
	}
	if desc.Name == "" {
		desc.Name = model.DefaultName
	}
	return desc, nil
}
