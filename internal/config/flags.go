package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig            = "config"
	FlagOutput            = "output"
	FlagDecryptedCopy     = "decrypted-copy"
	FlagCompression       = "compression"
	FlagSkipDecryptedCopy = "skip-decrypted-copy"
	FlagLogLevel          = "log-level"
	FlagLogFormat         = "log-format"
)

// RegisterFlags defines the configuration flags on fs. Every flag defaults
// to the zero value so that an unset flag never shadows env, file or
// built-in defaults.
//
// Flags:
//
//	-c/--config               config file path (.json, .jsonc or .toml)
//	-o/--output               encrypted pack path
//	--decrypted-copy          decrypted ZIP copy path
//	--compression             store, deflate or zstd
//	--skip-decrypted-copy     do not write the decrypted copy
//	--log-level               debug, info, warn, error
//	--log-format              console or json
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "Config file path (.json, .jsonc or .toml)")
	fs.StringP(FlagOutput, "o", "", fmt.Sprintf("Encrypted pack path (default %q)", DefaultOutputPath))
	fs.String(FlagDecryptedCopy, "", fmt.Sprintf("Decrypted ZIP copy path (default %q)", DefaultDecryptedCopyPath))
	fs.String(FlagCompression, "", fmt.Sprintf("Container compression: store, deflate or zstd (default %q)", DefaultCompression))
	fs.Bool(FlagSkipDecryptedCopy, false, "Do not write the decrypted copy")
	fs.String(FlagLogLevel, "", fmt.Sprintf("Log level (default %q)", DefaultLogLevel))
	fs.String(FlagLogFormat, "", fmt.Sprintf("Log format: console or json (default %q)", DefaultLogFormat))
}

// parseFlags reads the flags registered by RegisterFlags from an already
// parsed flag set. Flags that were not registered on fs are left empty.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	stringFlags := []struct {
		name string
		dst  *string
	}{
		{FlagConfig, &cfg.ConfigFilePath},
		{FlagOutput, &cfg.Pack.OutputPath},
		{FlagDecryptedCopy, &cfg.Pack.DecryptedCopyPath},
		{FlagCompression, &cfg.Pack.Compression},
		{FlagLogLevel, &cfg.Log.Level},
		{FlagLogFormat, &cfg.Log.Format},
	}
	for _, s := range stringFlags {
		if fs.Lookup(s.name) == nil {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", s.name, err)
		}
		*s.dst = v
	}

	if fs.Lookup(FlagSkipDecryptedCopy) != nil {
		v, err := fs.GetBool(FlagSkipDecryptedCopy)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", FlagSkipDecryptedCopy, err)
		}
		cfg.Pack.SkipDecryptedCopy = v
	}

	return cfg, nil
}
