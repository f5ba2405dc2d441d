package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/riff-pack/internal/app"
	"github.com/MKhiriev/riff-pack/internal/config"
	"github.com/MKhiriev/riff-pack/internal/container"
	"github.com/MKhiriev/riff-pack/internal/crypto"
	"github.com/MKhiriev/riff-pack/internal/manifest"
	"github.com/MKhiriev/riff-pack/internal/scanner"
	"github.com/MKhiriev/riff-pack/internal/service"
	"github.com/MKhiriev/riff-pack/internal/store"
	"github.com/MKhiriev/riff-pack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "secret"

type cliTestEnv struct {
	source string
	pack   string
	copy   string
	base   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		source: filepath.Join(base, "projects"),
		pack:   filepath.Join(base, "out", "riff.pack"),
		copy:   filepath.Join(base, "out", "decrypted", "riff.pack.zip"),
		base:   base,
	}

	files := map[string]string{
		"RiffCollection120BPM/Render/120~1~A~.mp3":   "riff A",
		"RiffCollection120BPM/Render/120~2~B~1.mp3":  "riff B",
		"RiffCollection95BPM/Render/95~3~outro~.mp3": "outro",
	}
	for rel, content := range files {
		path := filepath.Join(env.source, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return env
}

func (e *cliTestEnv) flags() []string {
	return []string{
		"--output", e.pack,
		"--decrypted-copy", e.copy,
		"--log-level", "error",
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_PackListUnpackDecrypt(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, append(env.flags(), env.source, testPassword)...)
	require.NoError(t, err)
	assert.Contains(t, out, "pack written")
	assert.Contains(t, out, "decrypted copy written")
	assert.FileExists(t, env.pack)
	assert.FileExists(t, env.copy)

	out, _, err = runCLI(t, append([]string{"list", env.pack, testPassword}, env.flags()...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Label")
	assert.Contains(t, out, "BLAKE3")
	assert.Contains(t, out, "3 riff(s)")
	assert.Contains(t, out, "outro")
	assert.Contains(t, out, "in-use")

	restored := filepath.Join(env.base, "restored")
	out, _, err = runCLI(t, append([]string{"unpack", env.pack, testPassword, restored}, env.flags()...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "assets extracted")
	assert.FileExists(t, filepath.Join(restored, "RiffCollection120BPM", "Render", "120~2~B~1.mp3"))
	assert.FileExists(t, filepath.Join(restored, "RiffCollection95BPM", "Render", "95~3~outro~.mp3"))

	zipPath := filepath.Join(env.base, "plain.zip")
	out, _, err = runCLI(t, append([]string{"decrypt", env.pack, testPassword, zipPath}, env.flags()...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "container decrypted")

	plain, err := os.ReadFile(zipPath)
	require.NoError(t, err)
	archive, err := container.Open(plain)
	require.NoError(t, err)
	assert.True(t, archive.Has(manifest.FileName))
	assert.Equal(t, 4, archive.Len())
}

func TestCLI_SkipDecryptedCopy(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, append(env.flags(), "--skip-decrypted-copy", "--compression", "zstd", env.source, testPassword)...)
	require.NoError(t, err)
	assert.Contains(t, out, "decrypted copy skipped")
	assert.NoFileExists(t, env.copy)
}

func TestCLI_WrongPassword(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, append(env.flags(), "--skip-decrypted-copy", env.source, testPassword)...)
	require.NoError(t, err)

	_, _, err = runCLI(t, append([]string{"list", env.pack, "wrong"}, env.flags()...)...)
	require.Error(t, err)
	assert.Contains(t, []int{exitCrypto, exitFormat}, exitCodeFromError(err))
}

func TestCLI_UsageErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "no arguments", args: nil, code: exitUsage},
		{name: "one argument", args: []string{env.source}, code: exitUsage},
		{name: "three arguments", args: []string{env.source, testPassword, "extra"}, code: exitUsage},
		{name: "unpack missing out dir", args: []string{"unpack", env.pack, testPassword}, code: exitUsage},
		{name: "unknown flag", args: []string{"--bogus", env.source, testPassword}, code: exitUsage},
		{name: "bad compression", args: []string{"--compression", "brotli", env.source, testPassword}, code: exitUsage},
		{name: "missing source", args: []string{"--output", env.pack, filepath.Join(env.base, "missing"), testPassword}, code: exitNotFound},
		{name: "missing pack", args: []string{"list", filepath.Join(env.base, "missing.pack"), testPassword}, code: exitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCodeFromError(err))
		})
	}
}

func TestCLI_Version(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: 0},
		{err: fmt.Errorf("%w: accepts 2 arg(s)", errUsage), want: exitUsage},
		{err: fmt.Errorf("%w: bad level", config.ErrInvalidLogConfig), want: exitUsage},
		{err: fmt.Errorf("unpack: decrypting: %w", crypto.ErrDecryptionFailed), want: exitCrypto},
		{err: crypto.ErrEnvelopeTooShort, want: exitCrypto},
		{err: fmt.Errorf("%w: %w", container.ErrInvalidContainer, service.ErrUnreferencedEntry), want: exitNotFound},
		{err: container.ErrEntryNotFound, want: exitNotFound},
		{err: scanner.ErrSourceNotFound, want: exitNotFound},
		{err: store.ErrPackNotFound, want: exitNotFound},
		{err: container.ErrInvalidContainer, want: exitFormat},
		{err: manifest.ErrInvalidManifest, want: exitFormat},
		{err: errors.New("disk full"), want: exitFailure},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFromError(tt.err))
		})
	}
}

func TestRenderManifestTable(t *testing.T) {
	entries := []app.ListedEntry{
		{Entry: models.ManifestEntry{ID: "id-a", GroupKey: 120, Index: 1, Label: "A", Status: models.StatusNone}, Size: 10, Fingerprint: "0123456789abcdef0123"},
		{Entry: models.ManifestEntry{ID: "id-b", GroupKey: 120, Index: 2, Label: "B", Status: models.StatusInUse}, Size: 5, Fingerprint: "fedcba9876543210fedc"},
	}

	out := renderManifestTable(entries)
	for _, header := range []string{"Group", "Index", "Label", "Status", "Size", "BLAKE3", "ID"} {
		assert.Contains(t, out, header)
	}
	assert.NotContains(t, out, "LABEL")
	assert.Contains(t, out, "in-use")
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef0123")
	assert.Contains(t, out, "2 riff(s)")
	assert.Contains(t, out, "15")

	assert.Empty(t, renderManifestTable(nil))
}

func TestRenderError(t *testing.T) {
	out := renderError(fmt.Errorf("%w: accepts 2 arg(s), received 1", errUsage))
	assert.Contains(t, out, app.MsgWrongArguments)
	assert.Contains(t, out, "received 1")

	out = renderError(fmt.Errorf("unpack: decrypting: %w", crypto.ErrDecryptionFailed))
	assert.Contains(t, out, app.MsgWrongPasswordOrCorrupt)
}
