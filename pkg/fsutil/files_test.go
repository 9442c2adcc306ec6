package fsutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniquePath(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		path     string
		expected string
	}{
		{
			name:     "no collision",
			existing: nil,
			path:     "/dl/report.pdf",
			expected: "/dl/report.pdf",
		},
		{
			name:     "single collision",
			existing: []string{"/dl/report.pdf"},
			path:     "/dl/report.pdf",
			expected: "/dl/report_1.pdf",
		},
		{
			name:     "double collision",
			existing: []string{"/dl/report.pdf", "/dl/report_1.pdf"},
			path:     "/dl/report.pdf",
			expected: "/dl/report_2.pdf",
		},
		{
			name:     "no extension",
			existing: []string{"/dl/download"},
			path:     "/dl/download",
			expected: "/dl/download_1",
		},
		{
			name:     "archive name",
			existing: []string{"/dl/photos.zip", "/dl/photos_1.zip", "/dl/photos_2.zip"},
			path:     "/dl/photos.zip",
			expected: "/dl/photos_3.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, f := range tt.existing {
				require.NoError(t, afero.WriteFile(fs, f, []byte("x"), FileModeDefault))
			}

			got, err := UniquePath(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
