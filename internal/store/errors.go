package store

import "errors"

// Sentinel errors returned by the file storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPackLocked is returned when another process holds the write lock of
	// the target pack file.
	ErrPackLocked = errors.New("pack file is locked by another writer")

	// ErrPackNotFound is returned when the pack file to read does not exist.
	ErrPackNotFound = errors.New("pack file not found")

	// ErrUnsafeLabel is returned when an asset label would escape its
	// directory once used as part of a file name.
	ErrUnsafeLabel = errors.New("asset label is not a safe file name")

	// ErrAssetExists is returned when extraction would overwrite an existing
	// file.
	ErrAssetExists = errors.New("asset file already exists")
)
