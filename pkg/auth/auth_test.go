package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "https://api.box.com/2.0/shared_items", http.NoBody)
	require.NoError(t, err)
	return req
}

func TestBearerAuth(t *testing.T) {
	req := newRequest(t)
	a := BearerAuth{Token: "tok123"}

	require.NoError(t, a.Apply(req))
	assert.Equal(t, "Bearer tok123", req.Header.Get("Authorization"))
	assert.Equal(t, BearerAuthType, a.Type())
}

func TestSharedLinkAuth(t *testing.T) {
	tests := []struct {
		name     string
		auth     SharedLinkAuth
		expected string
	}{
		{
			name:     "without password",
			auth:     SharedLinkAuth{SharedLink: "https://app.box.com/s/abc"},
			expected: "shared_link=https://app.box.com/s/abc",
		},
		{
			name:     "with password",
			auth:     SharedLinkAuth{SharedLink: "https://app.box.com/s/abc", Password: "hunter2"},
			expected: "shared_link=https://app.box.com/s/abc&shared_link_password=hunter2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t)
			require.NoError(t, tt.auth.Apply(req))
			assert.Equal(t, tt.expected, req.Header.Get("boxapi"))
		})
	}
}

func TestApplyAll(t *testing.T) {
	req := newRequest(t)
	err := ApplyAll(req,
		SharedLinkAuth{SharedLink: "https://app.box.com/s/abc"},
		BearerAuth{Token: "tok"},
	)
	require.NoError(t, err)
	assert.Equal(t, "shared_link=https://app.box.com/s/abc", req.Header.Get("boxapi"))
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
}
