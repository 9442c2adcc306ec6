// Package model defines the shared data types for resolved Box items,
// download progress, and download outcomes.
package model

import "fmt"

// Item types.
const (
	TypeFile   = "file"
	TypeFolder = "folder"
)

// Defaults applied when resolution cannot determine a field.
const (
	DefaultName = "download"
	DefaultType = TypeFile
)

// ItemDescriptor represents a resolved Box file or folder. It is
// constructed once per successful resolution and not mutated afterwards.
type ItemDescriptor struct {
	// ID is the Box item id. Empty when resolution failed and the
	// descriptor is a degraded try-direct fallback.
	ID string
	// Type is "file" or "folder".
	Type string
	// Name is the display name, "download" if unknown.
	Name string
	// Size is the byte count; 0 means unknown.
	Size int64
	// SharedLink is the original URL used to resolve the item.
	SharedLink string
	// DirectDownloadURL is populated only when scraping found an
	// embedded direct link.
	DirectDownloadURL string
	// TryDirect marks a degraded descriptor for which no metadata could
	// be fetched; the orchestrator will attempt download heuristics
	// anyway.
	TryDirect bool
}

// IsFolder reports whether the item is a folder. Folders are delivered
// by Box as a single server-produced ZIP archive.
func (d *ItemDescriptor) IsFolder() bool {
	return d.Type == TypeFolder
}

// Progress is one progress report from a streaming download.
// TotalBytes of 0 means the total is unknown; percentages must not be
// computed in that case.
type Progress struct {
	BytesDownloaded int64
	TotalBytes      int64
}

// Percent returns the completion percentage and whether it is known.
func (p Progress) Percent() (float64, bool) {
	if p.TotalBytes <= 0 {
		return 0, false
	}
	return float64(p.BytesDownloaded) / float64(p.TotalBytes) * 100, true
}

// sizeUnits used by FormatSize, in ascending order.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize formats a byte count as a human-readable string.
func FormatSize(size int64) string {
	if size < 0 {
		return "Unknown"
	}
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f PB", value)
}
