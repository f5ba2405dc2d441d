package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the scan root is missing or is not a
	// directory.
	ErrSourceNotFound = errors.New("source directory not found")

	ErrMalformedGroupName = errors.New("group directory name does not carry a tempo")
	ErrDuplicateGroup     = errors.New("tempo already taken by another group")
	ErrMissingAssetDir    = errors.New("asset directory not found")
	ErrMalformedAssetName = errors.New("asset file name does not match the layout")
	ErrInvalidStatus      = errors.New("unknown asset status")
)

// DiscoveryError describes one item that was skipped during a scan.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("skipped %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}
