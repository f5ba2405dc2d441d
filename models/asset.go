// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AssetStatus marks how an asset is currently used by its owner.
// The numeric values are persisted in the manifest and in asset file names,
// so they must never be renumbered.
type AssetStatus int

const (
	// StatusNone is the default status of a freshly rendered asset.
	StatusNone AssetStatus = 0

	// StatusInUse marks an asset that is already used somewhere.
	StatusInUse AssetStatus = 1

	// StatusRejected marks an asset that was reviewed and discarded.
	StatusRejected AssetStatus = 2
)

// Valid reports whether s belongs to the closed set of known statuses.
func (s AssetStatus) Valid() bool {
	switch s {
	case StatusNone, StatusInUse, StatusRejected:
		return true
	}
	return false
}

// String returns the human-readable name of the status.
func (s AssetStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusInUse:
		return "in-use"
	case StatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Asset is a single binary payload together with its descriptive metadata.
// Data is owned by the packing run only until it is written into a container.
type Asset struct {
	// Index is the ordinal of the asset inside its group.
	Index int

	// Label is a free-text note attached to the asset.
	Label string

	// Status is the usage status of the asset.
	Status AssetStatus

	// Data holds the raw asset bytes.
	Data []byte
}

// AssetGroup bundles every asset that shares the same tempo.
// Key must be positive and unique among the groups of one packing run.
type AssetGroup struct {
	Key    int
	Assets []Asset
}
