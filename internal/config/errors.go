package config

import "errors"

// Errors returned while loading and validating configuration.
var (
	// ErrInvalidPackConfig indicates invalid pack settings (for example, an
	// unknown compression method or an output path equal to the decrypted
	// copy path).
	ErrInvalidPackConfig = errors.New("invalid pack configuration")
	// ErrInvalidDiscoveryConfig indicates an unusable source layout.
	ErrInvalidDiscoveryConfig = errors.New("invalid discovery configuration")
	// ErrInvalidLogConfig indicates an unknown log level or format.
	ErrInvalidLogConfig = errors.New("invalid log configuration")
	// ErrUnsupportedConfigFile indicates a config file extension that is not
	// .json, .jsonc or .toml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file type")
)
