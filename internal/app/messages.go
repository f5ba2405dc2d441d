// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires discovery, the pack services and on-disk storage into the
// runs the riffpack commands perform.
//
// All Msg* constants are the human-readable lines printed to the terminal or
// written into log entries to describe the outcome of a run. Keeping them in
// one place keeps the wording consistent between commands.
package app

const (
	// MsgPackWritten heads the summary of a successful pack run.
	MsgPackWritten = "pack written"

	// MsgDecryptedCopyWritten is printed when the plaintext ZIP copy of a
	// fresh pack has been stored.
	MsgDecryptedCopyWritten = "decrypted copy written"

	// MsgDecryptedCopySkipped is printed when the decrypted copy was turned
	// off by configuration.
	MsgDecryptedCopySkipped = "decrypted copy skipped"

	// MsgAssetsExtracted heads the summary of an unpack run.
	MsgAssetsExtracted = "assets extracted"

	// MsgContainerDecrypted is printed after the decrypt command.
	MsgContainerDecrypted = "container decrypted"

	// MsgItemsSkipped introduces the list of source items that discovery
	// could not use.
	MsgItemsSkipped = "skipped during discovery"

	// MsgNoAssetsFound warns that the source tree held no usable assets. The
	// pack is still written.
	MsgNoAssetsFound = "no assets found, writing an empty pack"

	// MsgWrongArguments is printed for a wrong number of positional
	// arguments.
	MsgWrongArguments = "wrong arguments"

	// MsgInvalidConfig is printed when flags, environment or the config file
	// do not form a valid configuration.
	MsgInvalidConfig = "invalid configuration"

	// MsgWrongPasswordOrCorrupt is printed for every decryption failure. The
	// envelope carries no integrity tag, so a wrong password and a damaged
	// file cannot be told apart.
	MsgWrongPasswordOrCorrupt = "wrong password or corrupt pack"

	// MsgMalformedPack is printed when the decrypted bytes are not a valid
	// container or manifest.
	MsgMalformedPack = "malformed pack"

	// MsgInconsistentPack is printed when the manifest and the container
	// entries disagree.
	MsgInconsistentPack = "manifest and container disagree"

	// MsgNotFound is printed when an input path does not exist.
	MsgNotFound = "not found"

	// MsgPackLocked is printed when another run is writing the same pack.
	MsgPackLocked = "pack is being written by another run"

	// MsgAssetExists is printed when unpacking would overwrite a file.
	MsgAssetExists = "refusing to overwrite an existing file"

	// MsgUnexpectedError is printed for any failure not covered above.
	MsgUnexpectedError = "unexpected error"
)
