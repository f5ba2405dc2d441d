package service

import (
	"errors"

	"github.com/MKhiriev/riff-pack/internal/validators"
)

var (
	// ErrInvalidInput wraps every validation failure of pack input or of a
	// decoded manifest.
	ErrInvalidInput = errors.New("invalid input")

	ErrDuplicateGroupKey = validators.ErrDuplicateGroupKey
	ErrInvalidGroupKey   = validators.ErrInvalidGroupKey

	// ErrUnreferencedEntry is returned when a container holds an entry that
	// the manifest does not list. It is always reported together with
	// container.ErrInvalidContainer.
	ErrUnreferencedEntry = errors.New("container entry not referenced by the manifest")
)
