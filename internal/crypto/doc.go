// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the pack envelope: a password-derived AES-256 key
// and a streaming CBC cipher whose output is persisted as
//
//	offset 0  : IV (16 bytes)
//	offset 16 : AES-256-CBC(key, PKCS#7(plaintext))
//
// The key is PBKDF2-HMAC-SHA512 over the password with the fixed [Salt] and
// [Iterations]. The envelope carries no integrity tag: a wrong password and a
// corrupted file both surface as the same [ErrDecryptionFailed], or later as
// an unreadable container.
package crypto
