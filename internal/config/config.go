// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "RIFFPACK_"

// Default values applied when no other source sets a field.
const (
	DefaultOutputPath        = "riff.pack"
	DefaultDecryptedCopyPath = "decrypted_riff_pack/riff.pack.zip"
	DefaultCompression       = "deflate"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "console"
	DefaultGroupDirPrefix    = "RiffCollection"
	DefaultGroupDirSuffix    = "BPM"
	DefaultAssetDir          = "Render"
	DefaultAssetExt          = ".mp3"
)

// StructuredConfig is the top-level configuration container for riffpack.
// It is populated by merging values from command-line flags, environment
// variables, an optional config file and built-in defaults.
//
// The envelope parameters (salt, iteration count, key size) are deliberately
// absent: they are part of the pack format.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - environment variable name for scalar fields, after [EnvPrefix].
//   - json/toml - key names in the config file.
type StructuredConfig struct {
	// Pack holds output locations and container settings.
	Pack Pack `envPrefix:"PACK_" json:"pack" toml:"pack"`

	// Discovery describes the on-disk layout of the source asset tree.
	Discovery Discovery `envPrefix:"DISCOVERY_" json:"discovery" toml:"discovery"`

	// Log holds diagnostic output settings.
	Log Log `envPrefix:"LOG_" json:"log" toml:"log"`

	// ConfigFilePath is the optional path to a .json/.jsonc or .toml file.
	// Populated via RIFFPACK_CONFIG or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG" json:"-" toml:"-"`
}

// Pack holds settings for the pack, unpack and decrypt runs.
type Pack struct {
	// OutputPath is where the encrypted pack is written.
	// Env: RIFFPACK_PACK_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH" json:"output_path" toml:"output_path"`

	// DecryptedCopyPath is where the plaintext ZIP copy of a freshly written
	// pack is stored for inspection.
	// Env: RIFFPACK_PACK_DECRYPTED_COPY_PATH
	DecryptedCopyPath string `env:"DECRYPTED_COPY_PATH" json:"decrypted_copy_path" toml:"decrypted_copy_path"`

	// Compression is the container method: store, deflate or zstd.
	// Env: RIFFPACK_PACK_COMPRESSION
	Compression string `env:"COMPRESSION" json:"compression" toml:"compression"`

	// SkipDecryptedCopy disables the decrypted copy. Sources can only switch
	// it on: a false value never overrides a true one.
	// Env: RIFFPACK_PACK_SKIP_DECRYPTED_COPY
	SkipDecryptedCopy bool `env:"SKIP_DECRYPTED_COPY" json:"skip_decrypted_copy" toml:"skip_decrypted_copy"`
}

// Discovery names the directories and files the scanner looks for.
type Discovery struct {
	// Env: RIFFPACK_DISCOVERY_GROUP_DIR_PREFIX
	GroupDirPrefix string `env:"GROUP_DIR_PREFIX" json:"group_dir_prefix" toml:"group_dir_prefix"`
	// Env: RIFFPACK_DISCOVERY_GROUP_DIR_SUFFIX
	GroupDirSuffix string `env:"GROUP_DIR_SUFFIX" json:"group_dir_suffix" toml:"group_dir_suffix"`
	// Env: RIFFPACK_DISCOVERY_ASSET_DIR
	AssetDir string `env:"ASSET_DIR" json:"asset_dir" toml:"asset_dir"`
	// Env: RIFFPACK_DISCOVERY_ASSET_EXT
	AssetExt string `env:"ASSET_EXT" json:"asset_ext" toml:"asset_ext"`
}

// Log holds diagnostic output settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: RIFFPACK_LOG_LEVEL
	Level string `env:"LEVEL" json:"level" toml:"level"`

	// Format is "console" or "json".
	// Env: RIFFPACK_LOG_FORMAT
	Format string `env:"FORMAT" json:"format" toml:"format"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Command-line flags registered with [RegisterFlags]
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Pack: Pack{
			OutputPath:        DefaultOutputPath,
			DecryptedCopyPath: DefaultDecryptedCopyPath,
			Compression:       DefaultCompression,
		},
		Discovery: Discovery{
			GroupDirPrefix: DefaultGroupDirPrefix,
			GroupDirSuffix: DefaultGroupDirSuffix,
			AssetDir:       DefaultAssetDir,
			AssetExt:       DefaultAssetExt,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
