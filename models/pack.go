// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PackReport summarises a finished packing run.
type PackReport struct {
	// Groups is the number of asset groups that went into the pack.
	Groups int

	// Entries lists the manifest entries in the order they were written.
	Entries []ManifestEntry

	// BytesWritten is the size of the envelope (IV and ciphertext).
	BytesWritten int64
}

// ExtractedAsset is an asset recovered from a pack: its manifest entry and
// the raw bytes stored under the entry's identifier.
type ExtractedAsset struct {
	Entry ManifestEntry
	Data  []byte
}

// UnpackedPack is the transient result of decrypting and parsing a pack.
type UnpackedPack struct {
	Manifest Manifest
	Assets   []ExtractedAsset
}

// StoredFile describes an artifact written to disk.
type StoredFile struct {
	// Path is the location of the file.
	Path string

	// Size is the number of bytes written.
	Size int64

	// Fingerprint is the hex-encoded BLAKE3 digest of the file contents.
	Fingerprint string
}
