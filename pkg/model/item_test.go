package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name        string
		progress    Progress
		expected    float64
		expectKnown bool
	}{
		{
			name:        "half done",
			progress:    Progress{BytesDownloaded: 1024, TotalBytes: 2048},
			expected:    50,
			expectKnown: true,
		},
		{
			name:        "complete",
			progress:    Progress{BytesDownloaded: 2048, TotalBytes: 2048},
			expected:    100,
			expectKnown: true,
		},
		{
			name:        "unknown total",
			progress:    Progress{BytesDownloaded: 4096, TotalBytes: 0},
			expectKnown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, known := tt.progress.Percent()
			assert.Equal(t, tt.expectKnown, known)
			if tt.expectKnown {
				assert.InDelta(t, tt.expected, percent, 0.01)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{512, "512.0 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
		{-1, "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSize(tt.size))
	}
}

func TestItemDescriptorIsFolder(t *testing.T) {
	assert.True(t, (&ItemDescriptor{Type: TypeFolder}).IsFolder())
	assert.False(t, (&ItemDescriptor{Type: TypeFile}).IsFolder())
	assert.False(t, (&ItemDescriptor{}).IsFolder())
}
