package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/internal/scanner"
	"github.com/MKhiriev/riff-pack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extracted(key, index int, label string, status models.AssetStatus, data string) models.ExtractedAsset {
	return models.ExtractedAsset{
		Entry: models.ManifestEntry{ID: label + "-id", GroupKey: key, Index: index, Label: label, Status: status},
		Data:  []byte(data),
	}
}

func TestExtractAssets_WritesLayout(t *testing.T) {
	s := NewAssetStorage(logger.Nop())
	dir := t.TempDir()

	paths, err := s.ExtractAssets(context.Background(), dir, scanner.DefaultLayout(), []models.ExtractedAsset{
		extracted(120, 1, "A", models.StatusNone, "a"),
		extracted(120, 2, "B", models.StatusInUse, "b"),
	})
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "RiffCollection120BPM", "Render", "120~1~A~.mp3"),
		filepath.Join(dir, "RiffCollection120BPM", "Render", "120~2~B~1.mp3"),
	}
	assert.Equal(t, want, paths)

	got, err := os.ReadFile(want[1])
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestExtractAssets_RescanReproducesGroups(t *testing.T) {
	s := NewAssetStorage(logger.Nop())
	dir := t.TempDir()
	assets := []models.ExtractedAsset{
		extracted(120, 1, "A", models.StatusNone, "a"),
		extracted(95, 3, "hook", models.StatusRejected, "h"),
	}

	_, err := s.ExtractAssets(context.Background(), dir, scanner.DefaultLayout(), assets)
	require.NoError(t, err)

	res, err := scanner.NewScanner(scanner.DefaultLayout(), logger.Nop()).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, []models.AssetGroup{
		{Key: 120, Assets: []models.Asset{{Index: 1, Label: "A", Status: models.StatusNone, Data: []byte("a")}}},
		{Key: 95, Assets: []models.Asset{{Index: 3, Label: "hook", Status: models.StatusRejected, Data: []byte("h")}}},
	}, res.Groups)
}

func TestExtractAssets_UnsafeLabel(t *testing.T) {
	s := NewAssetStorage(logger.Nop())

	for _, label := range []string{"../escape", `a\b`, "x/y"} {
		_, err := s.ExtractAssets(context.Background(), t.TempDir(), scanner.DefaultLayout(),
			[]models.ExtractedAsset{extracted(1, 1, label, models.StatusNone, "x")})
		assert.ErrorIs(t, err, ErrUnsafeLabel, label)
	}
}

func TestExtractAssets_RefusesOverwrite(t *testing.T) {
	s := NewAssetStorage(logger.Nop())
	dir := t.TempDir()
	asset := extracted(120, 1, "A", models.StatusNone, "a")

	_, err := s.ExtractAssets(context.Background(), dir, scanner.DefaultLayout(), []models.ExtractedAsset{asset})
	require.NoError(t, err)

	paths, err := s.ExtractAssets(context.Background(), dir, scanner.DefaultLayout(), []models.ExtractedAsset{asset})
	assert.ErrorIs(t, err, ErrAssetExists)
	assert.Empty(t, paths)
}

func TestNewStorages(t *testing.T) {
	s := NewStorages(logger.Nop())
	assert.NotNil(t, s.PackFileStorage)
	assert.NotNil(t, s.AssetStorage)
}
