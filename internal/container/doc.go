// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package container bundles named byte blobs into a single ZIP archive and
// reads them back with random access.
//
// A pack container holds exactly one manifest entry plus one entry per asset,
// each named by the asset identifier. Entry names are unique: [Writer.Add]
// rejects a repeated name with [ErrDuplicateEntry] and [Open] rejects an
// archive that carries one.
//
// Deflate (the default) and zstd entries are compressed with
// github.com/klauspost/compress, registered on the archive/zip writer and
// reader so that plain ZIP consumers can still read deflate containers.
package container
