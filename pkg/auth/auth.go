// Package auth provides authentication support for Box HTTP requests.
package auth

import "net/http"

// Authenticator defines the interface for applying authentication to
// HTTP requests.
type Authenticator interface {
	Apply(req *http.Request) error
	Type() Type
}

// Type represents the type of authentication.
type Type string

// Authentication types.
const (
	// BearerAuthType represents Bearer token authentication.
	BearerAuthType Type = "bearer"
	// SharedLinkAuthType represents Box shared-link authentication via
	// the boxapi header.
	SharedLinkAuthType Type = "shared_link"
)

// BearerAuth represents Bearer token authentication.
type BearerAuth struct {
	Token string
}

// Apply adds a Bearer token to the Authorization header of the HTTP request.
func (b BearerAuth) Apply(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

// Type returns the authentication type (BearerAuthType).
func (b BearerAuth) Type() Type { return BearerAuthType }

// SharedLinkAuth encodes a shared link, and optionally its password, in
// the boxapi header understood by the Box API.
type SharedLinkAuth struct {
	SharedLink string
	Password   string
}

// Apply sets the boxapi header of the form
// shared_link=<url>[&shared_link_password=<password>].
func (s SharedLinkAuth) Apply(req *http.Request) error {
	value := "shared_link=" + s.SharedLink
	if s.Password != "" {
		value += "&shared_link_password=" + s.Password
	}
	req.Header.Set("boxapi", value)
	return nil
}

// Type returns the authentication type (SharedLinkAuthType).
func (s SharedLinkAuth) Type() Type { return SharedLinkAuthType }

// ApplyAll applies every authenticator in order to the request.
func ApplyAll(req *http.Request, auths ...Authenticator) error {
	for _, a := range auths {
		if err := a.Apply(req); err != nil {
			return err
		}
	}
	return nil
}
