package main

import (
	"errors"

	"github.com/MKhiriev/riff-pack/internal/config"
	"github.com/MKhiriev/riff-pack/internal/container"
	"github.com/MKhiriev/riff-pack/internal/crypto"
	"github.com/MKhiriev/riff-pack/internal/manifest"
	"github.com/MKhiriev/riff-pack/internal/scanner"
	"github.com/MKhiriev/riff-pack/internal/service"
	"github.com/MKhiriev/riff-pack/internal/store"
)

// errUsage marks argument and flag errors.
var errUsage = errors.New("usage error")

// Process exit codes.
const (
	exitFailure  = 1
	exitUsage    = 2
	exitFormat   = 3
	exitCrypto   = 4
	exitNotFound = 5
)

// errorExitCodes is checked in order; the first match wins.
var errorExitCodes = []struct {
	err  error
	code int
}{
	{errUsage, exitUsage},
	{config.ErrInvalidPackConfig, exitUsage},
	{config.ErrInvalidDiscoveryConfig, exitUsage},
	{config.ErrInvalidLogConfig, exitUsage},
	{config.ErrUnsupportedConfigFile, exitUsage},

	{crypto.ErrDecryptionFailed, exitCrypto},
	{crypto.ErrEnvelopeTooShort, exitCrypto},
	{crypto.ErrInvalidKeyLength, exitCrypto},
	{crypto.ErrInvalidIV, exitCrypto},

	{service.ErrUnreferencedEntry, exitNotFound},
	{container.ErrEntryNotFound, exitNotFound},
	{scanner.ErrSourceNotFound, exitNotFound},
	{store.ErrPackNotFound, exitNotFound},

	{container.ErrInvalidContainer, exitFormat},
	{manifest.ErrInvalidManifest, exitFormat},
	{service.ErrInvalidInput, exitFormat},
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	for _, m := range errorExitCodes {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return exitFailure
}
