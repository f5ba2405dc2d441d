package manifest

import "errors"

var (
	// ErrInvalidManifest is returned by [Decode] when the blob is not valid
	// JSON or violates the manifest schema, and by [Encode] for a manifest
	// that cannot be written faithfully.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrMissingField is wrapped together with [ErrInvalidManifest] when a
	// required field is absent.
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidUTF8 is wrapped together with [ErrInvalidManifest] when an id
	// or label is not valid UTF-8. JSON would replace such bytes with U+FFFD.
	ErrInvalidUTF8 = errors.New("text is not valid UTF-8")
)
