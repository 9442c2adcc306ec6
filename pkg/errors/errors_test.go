package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	wrapped := Wrap(ErrDownloadFailed, "shared-file endpoint")
	require.Error(t, wrapped)
	assert.True(t, Is(wrapped, ErrDownloadFailed))
	assert.Equal(t, "shared-file endpoint: download failed", wrapped.Error())
}

func TestWrapf(t *testing.T) {
	assert.Nil(t, Wrapf(nil, "status %d", 500))

	wrapped := Wrapf(ErrResolveFailed, "unexpected status code: %d", 418)
	require.Error(t, wrapped)
	assert.True(t, Is(wrapped, ErrResolveFailed))
	assert.Contains(t, wrapped.Error(), "418")
}

func TestIs_Nested(t *testing.T) {
	inner := Wrap(ErrDownloadCancelled, "while streaming")
	outer := fmt.Errorf("strategy: %w", inner)
	assert.True(t, Is(outer, ErrDownloadCancelled))
	assert.False(t, Is(outer, ErrDownloadFailed))
}
