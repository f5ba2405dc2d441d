// Package config provides configuration loading, merging, and validation
// facilities for riffpack.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (RIFFPACK_ prefix)
//  3. Config file (.json/.jsonc via tidwall/jsonc, or .toml)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
