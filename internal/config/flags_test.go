package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "short flags",
			args: []string{"-c", "cfg.toml", "-o", "a.pack"},
			want: &StructuredConfig{
				ConfigFilePath: "cfg.toml",
				Pack:           Pack{OutputPath: "a.pack"},
			},
		},
		{
			name: "all long flags",
			args: []string{
				"--config", "cfg.json",
				"--output", "b.pack",
				"--decrypted-copy", "b.zip",
				"--compression", "store",
				"--skip-decrypted-copy",
				"--log-level", "debug",
				"--log-format", "json",
			},
			want: &StructuredConfig{
				ConfigFilePath: "cfg.json",
				Pack: Pack{
					OutputPath:        "b.pack",
					DecryptedCopyPath: "b.zip",
					Compression:       "store",
					SkipDecryptedCopy: true,
				},
				Log: Log{Level: "debug", Format: "json"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(parsedFlags(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseFlags_UnregisteredFlagSet verifies that a flag set without the
// config flags yields an empty config.
func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	fs.String("unrelated", "", "")

	got, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, got)
}

func TestParseFlags_WrongFlagType(t *testing.T) {
	fs := pflag.NewFlagSet("bad", pflag.ContinueOnError)
	fs.Int(FlagOutput, 0, "")

	_, err := parseFlags(fs)
	assert.Error(t, err)
}
