// Package oauth implements the authorization-code flow against the Box
// identity service: building the browser authorization URL and
// exchanging the returned code for an access token.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/httpclient"
)

const (
	// DefaultAuthorizeURL is where the user's browser is sent to grant access.
	DefaultAuthorizeURL = "https://account.box.com/api/oauth2/authorize"
	// DefaultTokenURL is the code-for-token exchange endpoint.
	DefaultTokenURL = "https://api.box.com/oauth2/token"
	// DefaultRedirectURI is used when the app registration has no
	// custom redirect; the code is read off the localhost URL manually.
	DefaultRedirectURI = "https://localhost"
)

// Credentials identifies a registered OAuth application.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// TokenResponse is the relevant subset of the token endpoint's payload.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// Client performs the OAuth exchange.
type Client struct {
	http         *http.Client
	authorizeURL string
	tokenURL     string
}

// Option mutates the client configuration.
type Option func(*Client)

// WithEndpoints overrides the authorize and token URLs.
func WithEndpoints(authorizeURL, tokenURL string) Option {
	return func(c *Client) {
		c.authorizeURL = authorizeURL
		c.tokenURL = tokenURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates an OAuth client with the given request timeout.
func New(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http:         httpclient.New(timeout),
		authorizeURL: DefaultAuthorizeURL,
		tokenURL:     DefaultTokenURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthorizationURL builds the URL the user opens in a browser. The
// state parameter is a fresh UUID the caller may verify on return.
func (c *Client) AuthorizationURL(creds Credentials) (authURL, state string) {
	redirect := creds.RedirectURI
	if redirect == "" {
		redirect = DefaultRedirectURI
	}
	state = uuid.NewString()
	q := url.Values{}
	q.Set("client_id", creds.ClientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", redirect)
	q.Set("state", state)
	return c.authorizeURL + "?" + q.Encode(), state
}

// ExchangeCode trades an authorization code for an access token. A
// non-200 response is a hard failure carrying the status and body.
func (c *Client) ExchangeCode(ctx context.Context, creds Credentials, code string) (*TokenResponse, error) {
	redirect := creds.RedirectURI
	if redirect == "" {
		redirect = DefaultRedirectURI
	}
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	// Must match the redirect_uri the authorization request carried.
	form.Set("redirect_uri", redirect)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", httpclient.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.Wrapf(errors.ErrTokenExchange, "status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tok TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}
	return &tok, nil
}
