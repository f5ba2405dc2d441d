// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/models"
)

type fsScanner struct {
	layout Layout
	logger *logger.Logger
}

func NewScanner(layout Layout, log *logger.Logger) Scanner {
	return &fsScanner{layout: layout, logger: log.WithComponent("scanner")}
}

func (s *fsScanner) Scan(ctx context.Context, root string) (ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ScanResult{}, fmt.Errorf("%w: %s", ErrSourceNotFound, root)
		}
		return ScanResult{}, fmt.Errorf("stat source directory: %w", err)
	}
	if !info.IsDir() {
		return ScanResult{}, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return ScanResult{}, fmt.Errorf("read source directory: %w", err)
	}

	s.logger.Info().Str("root", root).Msg("searching for asset groups")

	result := ScanResult{Groups: make([]models.AssetGroup, 0)}
	seen := make(map[int]string)
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return ScanResult{}, err
		}
		if !entry.IsDir() || !s.layout.matchesGroupPrefix(entry.Name()) {
			continue
		}

		groupPath := filepath.Join(root, entry.Name())
		key, err := s.layout.ParseGroupDir(entry.Name())
		if err != nil {
			result.Skipped = append(result.Skipped, s.skip(groupPath, err))
			continue
		}
		if first, dup := seen[key]; dup {
			result.Skipped = append(result.Skipped, s.skip(groupPath, fmt.Errorf("%w: %d (%s)", ErrDuplicateGroup, key, first)))
			continue
		}

		group, skipped, err := s.scanGroup(groupPath, key)
		result.Skipped = append(result.Skipped, skipped...)
		if err != nil {
			result.Skipped = append(result.Skipped, s.skip(groupPath, err))
			continue
		}

		seen[key] = entry.Name()
		result.Groups = append(result.Groups, group)
		s.logger.Info().Int("group", key).Int("assets", len(group.Assets)).Msg("found group")
	}

	return result, nil
}

// scanGroup loads the assets of one group. A non-nil error means the whole
// group is skipped; skipped assets are returned alongside a usable group.
func (s *fsScanner) scanGroup(groupPath string, key int) (models.AssetGroup, []error, error) {
	assetDir := filepath.Join(groupPath, s.layout.AssetDir)
	info, err := os.Stat(assetDir)
	if err != nil || !info.IsDir() {
		return models.AssetGroup{}, nil, ErrMissingAssetDir
	}

	entries, err := os.ReadDir(assetDir)
	if err != nil {
		return models.AssetGroup{}, nil, fmt.Errorf("read asset directory: %w", err)
	}

	group := models.AssetGroup{Key: key, Assets: make([]models.Asset, 0, len(entries))}
	var skipped []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !s.layout.hasAssetExt(entry.Name()) {
			continue
		}

		assetPath := filepath.Join(assetDir, entry.Name())
		asset, err := s.layout.ParseAssetFile(entry.Name())
		if err != nil {
			skipped = append(skipped, s.skip(assetPath, err))
			continue
		}

		asset.Data, err = os.ReadFile(assetPath)
		if err != nil {
			skipped = append(skipped, s.skip(assetPath, err))
			continue
		}

		s.logger.Debug().
			Int("group", key).
			Int("index", asset.Index).
			Str("status", asset.Status.String()).
			Int("bytes", len(asset.Data)).
			Msg("found asset")
		group.Assets = append(group.Assets, asset)
	}

	return group, skipped, nil
}

func (s *fsScanner) skip(path string, err error) error {
	s.logger.Warn().Err(err).Str("path", path).Msg("skipping")
	return &DiscoveryError{Path: path, Err: err}
}
