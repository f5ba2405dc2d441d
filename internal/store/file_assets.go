package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/internal/scanner"
	"github.com/MKhiriev/riff-pack/models"
)

type assetStorage struct {
	logger *logger.Logger
}

func NewAssetStorage(log *logger.Logger) AssetStorage {
	return &assetStorage{logger: log.WithComponent("asset-storage")}
}

// ExtractAssets implements [AssetStorage]. Existing files are never
// overwritten; files written before a failure are left in place.
func (s *assetStorage) ExtractAssets(ctx context.Context, dir string, layout scanner.Layout, assets []models.ExtractedAsset) ([]string, error) {
	paths := make([]string, 0, len(assets))
	for _, asset := range assets {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if err := checkLabel(asset.Entry.Label); err != nil {
			return paths, fmt.Errorf("%w: %q", err, asset.Entry.Label)
		}

		assetDir := filepath.Join(dir, layout.GroupDir(asset.Entry.GroupKey), layout.AssetDir)
		if err := os.MkdirAll(assetDir, 0o755); err != nil {
			return paths, fmt.Errorf("create asset directory: %w", err)
		}

		path := filepath.Join(assetDir, layout.AssetFile(asset.Entry))
		if err := writeNew(path, asset.Data); err != nil {
			return paths, err
		}

		s.logger.Debug().Str("id", asset.Entry.ID).Str("path", path).Msg("extracted asset")
		paths = append(paths, path)
	}

	s.logger.Info().Str("dir", dir).Int("assets", len(paths)).Msg("extracted assets")
	return paths, nil
}

func checkLabel(label string) error {
	if strings.ContainsAny(label, `/\`+"\x00") {
		return ErrUnsafeLabel
	}
	return nil
}

func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrAssetExists, path)
		}
		return fmt.Errorf("create asset file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write asset file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close asset file: %w", err)
	}
	return nil
}
