package download

import "sync/atomic"

// Session is the ephemeral state of one user-invoked download. The
// cancelled flag has a single writer (the control path) and a single
// reader (the streaming loop); atomic.Bool provides the cross-goroutine
// visibility guarantee. At most one download runs per session; a new
// download requires a new or Reset session.
type Session struct {
	accessToken string
	cancelled   atomic.Bool
}

// NewSession creates a session. The access token may be empty and is
// never mutated mid-session.
func NewSession(accessToken string) *Session {
	return &Session{accessToken: accessToken}
}

// AccessToken returns the credential set at session creation.
func (s *Session) AccessToken() string { return s.accessToken }

// Cancel requests cancellation of the active download. The streaming
// loop observes the flag between chunks, so latency is bounded by one
// chunk of transfer.
func (s *Session) Cancel() { s.cancelled.Store(true) }

// Cancelled reports whether cancellation has been requested.
func (s *Session) Cancelled() bool { return s.cancelled.Load() }

// Reset clears the cancelled flag so the session can run another
// download.
func (s *Session) Reset() { s.cancelled.Store(false) }
