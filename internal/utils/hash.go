// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"github.com/zeebo/blake3"
)

// domainKey is a 32-byte BLAKE3 key. Each fingerprint kind hashes under its
// own key so a pack file and a cipher key never share a digest.
type domainKey [32]byte

var (
	packDomainKey = domainKey{
		'r', 'i', 'f', 'f', 'p', 'a', 'c', 'k', '.', 'p', 'a', 'c', 'k', 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	keyDomainKey = domainKey{
		'r', 'i', 'f', 'f', 'p', 'a', 'c', 'k', '.', 'k', 'e', 'y', 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// KeyFingerprintLength is the number of digest bytes kept by KeyFingerprint.
const KeyFingerprintLength = 6

// hasherPool holds pack-domain hashers for one-shot fingerprints.
var hasherPool = sync.Pool{
	New: func() any {
		return newKeyed(packDomainKey)
	},
}

// NewFingerprintHash returns a streaming pack-domain hasher. Feed it the bytes
// of a pack file and pass the sum to FormatFingerprint.
func NewFingerprintHash() hash.Hash {
	return newKeyed(packDomainKey)
}

// Fingerprint returns the hex pack-domain BLAKE3 digest of data. It equals
// the digest produced by streaming the same bytes through NewFingerprintHash.
//
// Example usage:
//
//	sum := utils.Fingerprint(packBytes)
func Fingerprint(data []byte) string {
	h := hasherPool.Get().(*blake3.Hasher)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return FormatFingerprint(sum)
}

// KeyFingerprint returns a short, non-reversible tag for a derived key that
// is safe to put in logs.
func KeyFingerprint(key []byte) string {
	h := newKeyed(keyDomainKey)
	h.Write(key)
	return hex.EncodeToString(h.Sum(nil)[:KeyFingerprintLength])
}

// FormatFingerprint hex-encodes a digest.
func FormatFingerprint(sum []byte) string {
	return hex.EncodeToString(sum)
}

func newKeyed(key domainKey) *blake3.Hasher {
	// NewKeyed only fails for keys that are not 32 bytes.
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("utils: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	return h
}
