package container

import "errors"

var (
	// ErrInvalidContainer is returned when bytes do not form a readable
	// container. After decryption this means a wrong password or a corrupted
	// pack.
	ErrInvalidContainer = errors.New("invalid container")

	// ErrEntryNotFound is returned by [Archive.Read] for an unknown name.
	ErrEntryNotFound = errors.New("container entry not found")

	// ErrDuplicateEntry is returned when an entry name is added twice.
	ErrDuplicateEntry = errors.New("duplicate container entry")

	// ErrInvalidEntryName is returned for an empty entry name.
	ErrInvalidEntryName = errors.New("invalid container entry name")

	// ErrUnknownMethod is returned for an unsupported compression method.
	ErrUnknownMethod = errors.New("unknown compression method")

	// ErrWriterClosed is returned when adding to a closed [Writer].
	ErrWriterClosed = errors.New("container writer is closed")
)
