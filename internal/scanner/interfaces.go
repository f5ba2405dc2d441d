package scanner

import (
	"context"

	"github.com/MKhiriev/riff-pack/models"
)

// Scanner walks a source tree and loads every well-formed asset group.
type Scanner interface {
	// Scan fails only when root is unusable. Malformed or unreadable items
	// are returned in ScanResult.Skipped as *DiscoveryError values.
	Scan(ctx context.Context, root string) (ScanResult, error)
}

// ScanResult holds the groups found under a root, in directory-name order,
// and the items that were skipped.
type ScanResult struct {
	Groups  []models.AssetGroup
	Skipped []error
}

// AssetCount returns the number of assets across all groups.
func (r ScanResult) AssetCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Assets)
	}
	return n
}
