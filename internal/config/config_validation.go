// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/riff-pack/internal/container"
	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/internal/scanner"
)

// validate checks that the final merged [StructuredConfig] is usable before
// any file is touched.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Config sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Pack.OutputPath == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidPackConfig)
	}
	if !cfg.Pack.SkipDecryptedCopy &&
		filepath.Clean(cfg.Pack.OutputPath) == filepath.Clean(cfg.Pack.DecryptedCopyPath) {
		return fmt.Errorf("%w: decrypted copy would overwrite the pack", ErrInvalidPackConfig)
	}
	if !cfg.Pack.SkipDecryptedCopy && cfg.Pack.DecryptedCopyPath == "" {
		return fmt.Errorf("%w: empty decrypted copy path", ErrInvalidPackConfig)
	}
	if _, err := container.ParseMethod(cfg.Pack.Compression); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPackConfig, err)
	}

	if cfg.Discovery.AssetDir == "" || strings.ContainsAny(cfg.Discovery.AssetDir, `/\`) {
		return fmt.Errorf("%w: asset dir must be a single directory name", ErrInvalidDiscoveryConfig)
	}
	if !strings.HasPrefix(cfg.Discovery.AssetExt, ".") {
		return fmt.Errorf("%w: asset extension must start with a dot", ErrInvalidDiscoveryConfig)
	}
	if cfg.Discovery.GroupDirPrefix == "" && cfg.Discovery.GroupDirSuffix == "" {
		return fmt.Errorf("%w: group dir prefix and suffix are both empty", ErrInvalidDiscoveryConfig)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfig, err)
	}
	if err := logger.ValidateFormat(cfg.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfig, err)
	}

	return nil
}

// CompressionMethod returns the parsed container method. It is only valid on
// a config returned by GetStructuredConfig.
func (cfg *StructuredConfig) CompressionMethod() container.Method {
	m, _ := container.ParseMethod(cfg.Pack.Compression)
	return m
}

// Layout returns the source tree layout described by the Discovery section.
func (cfg *StructuredConfig) Layout() scanner.Layout {
	return scanner.Layout{
		GroupDirPrefix: cfg.Discovery.GroupDirPrefix,
		GroupDirSuffix: cfg.Discovery.GroupDirSuffix,
		AssetDir:       cfg.Discovery.AssetDir,
		AssetExt:       cfg.Discovery.AssetExt,
	}
}
