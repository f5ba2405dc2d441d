// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/internal/utils"
	"github.com/MKhiriev/riff-pack/models"
)

// LockSuffix is appended to a pack path to name its lock file. The lock file
// is left in place after the write.
const LockSuffix = ".lock"

// packFileStorage is the default implementation of [PackFileStorage]. It
// stores packs on the local filesystem.
type packFileStorage struct {
	logger *logger.Logger
}

// NewPackFileStorage constructs a new [PackFileStorage] instance.
func NewPackFileStorage(log *logger.Logger) PackFileStorage {
	return &packFileStorage{logger: log.WithComponent("pack-storage")}
}

// WritePack implements [PackFileStorage]. The returned fingerprint is the
// BLAKE3 digest of exactly the bytes that were written.
func (s *packFileStorage) WritePack(ctx context.Context, path string, write func(w io.Writer) error) (models.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredFile{}, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.StoredFile{}, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(path + LockSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return models.StoredFile{}, fmt.Errorf("%w: %s", ErrPackLocked, path)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			s.logger.Warn().Err(unlockErr).Str("path", path).Msg("failed to release pack lock")
		}
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("create temporary file: %w", err)
	}

	stored, err := s.fill(tmp, write)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close temporary file: %w", closeErr)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			s.logger.Warn().Err(rmErr).Str("path", tmp.Name()).Msg("failed to remove partial file")
		}
		return models.StoredFile{}, err
	}

	stored.Path = path
	s.logger.Info().
		Str("path", path).
		Int64("bytes", stored.Size).
		Str("blake3", stored.Fingerprint).
		Msg("wrote file")
	return stored, nil
}

func (s *packFileStorage) fill(f *os.File, write func(w io.Writer) error) (models.StoredFile, error) {
	h := utils.NewFingerprintHash()
	cw := &countingWriter{w: io.MultiWriter(f, h)}

	if err := write(cw); err != nil {
		return models.StoredFile{}, err
	}
	if err := f.Sync(); err != nil {
		return models.StoredFile{}, fmt.Errorf("sync file: %w", err)
	}

	return models.StoredFile{
		Size:        cw.n,
		Fingerprint: utils.FormatFingerprint(h.Sum(nil)),
	}, nil
}

// OpenPack implements [PackFileStorage].
func (s *packFileStorage) OpenPack(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPackNotFound, path)
		}
		return nil, fmt.Errorf("open pack: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat pack: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrPackNotFound, path)
	}

	return f, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
