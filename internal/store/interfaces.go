package store

import (
	"context"
	"io"

	"github.com/MKhiriev/riff-pack/internal/scanner"
	"github.com/MKhiriev/riff-pack/models"
)

// PackFileStorage persists and opens pack files (and their decrypted copies).
type PackFileStorage interface {
	// WritePack runs write against a temporary file next to path and moves it
	// into place once write succeeds. Concurrent writers of the same path are
	// excluded with a lock file; on any failure path is left untouched.
	WritePack(ctx context.Context, path string, write func(w io.Writer) error) (models.StoredFile, error)

	// OpenPack opens a stored pack for reading.
	OpenPack(path string) (io.ReadCloser, error)
}

// AssetStorage writes extracted assets back into a source tree.
type AssetStorage interface {
	// ExtractAssets writes every asset to dir/<group dir>/<asset dir>/<asset
	// file> and returns the written paths in input order.
	ExtractAssets(ctx context.Context, dir string, layout scanner.Layout, assets []models.ExtractedAsset) ([]string, error)
}
