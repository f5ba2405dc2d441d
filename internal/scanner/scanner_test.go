package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates root/rel with the given content, making parent dirs.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestScanner() Scanner {
	return NewScanner(DefaultLayout(), logger.Nop())
}

func TestScan_WellFormedTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "RiffCollection120BPM/Render/120~1~A~.mp3", "a-bytes")
	writeFile(t, root, "RiffCollection120BPM/Render/120~2~B~1.mp3", "b-bytes")
	writeFile(t, root, "RiffCollection95BPM/Render/95~1~intro~2.mp3", "intro")

	res, err := newTestScanner().Scan(context.Background(), root)
	require.NoError(t, err)

	assert.Empty(t, res.Skipped)
	assert.Equal(t, 3, res.AssetCount())
	assert.Equal(t, []models.AssetGroup{
		{Key: 120, Assets: []models.Asset{
			{Index: 1, Label: "A", Status: models.StatusNone, Data: []byte("a-bytes")},
			{Index: 2, Label: "B", Status: models.StatusInUse, Data: []byte("b-bytes")},
		}},
		{Key: 95, Assets: []models.Asset{
			{Index: 1, Label: "intro", Status: models.StatusRejected, Data: []byte("intro")},
		}},
	}, res.Groups)
}

func TestScan_SkipsMalformedItems(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "RiffCollection120BPM/Render/120~1~A~.mp3", "ok")
	writeFile(t, root, "RiffCollection120BPM/Render/garbage.mp3", "bad name")
	writeFile(t, root, "RiffCollection120BPM/Render/120~2~B~9.mp3", "bad status")
	writeFile(t, root, "RiffCollection120BPM/Render/notes.txt", "ignored")
	writeFile(t, root, "RiffCollectionFastBPM/Render/1~1~A~.mp3", "bad group")
	writeFile(t, root, "RiffCollection60BPM/Stems/60~1~A~.mp3", "no render dir")
	writeFile(t, root, "Unrelated/Render/1~1~A~.mp3", "ignored")
	writeFile(t, root, "RiffCollection7BPM.txt", "a file, not a group")

	res, err := newTestScanner().Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, 120, res.Groups[0].Key)
	require.Len(t, res.Groups[0].Assets, 1)
	assert.Equal(t, "A", res.Groups[0].Assets[0].Label)

	require.Len(t, res.Skipped, 4)
	targets := []error{ErrMalformedAssetName, ErrInvalidStatus, ErrMissingAssetDir, ErrMalformedGroupName}
	for _, target := range targets {
		found := false
		for _, s := range res.Skipped {
			var de *DiscoveryError
			require.True(t, errors.As(s, &de))
			assert.NotEmpty(t, de.Path)
			if errors.Is(s, target) {
				found = true
			}
		}
		assert.True(t, found, "expected a skipped item for %v", target)
	}
}

func TestScan_DuplicateTempoSkipsSecondGroup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "RiffCollection0120BPM/Render/120~1~first~.mp3", "first")
	writeFile(t, root, "RiffCollection120BPM/Render/120~1~second~.mp3", "second")

	res, err := newTestScanner().Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, "first", res.Groups[0].Assets[0].Label)
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0], ErrDuplicateGroup)
}

func TestScan_EmptyGroupIsKept(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "RiffCollection80BPM", "Render"), 0o755))

	res, err := newTestScanner().Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	assert.Empty(t, res.Groups[0].Assets)
}

func TestScan_EmptyRoot(t *testing.T) {
	res, err := newTestScanner().Scan(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.NotNil(t, res.Groups)
	assert.Empty(t, res.Groups)
	assert.Zero(t, res.AssetCount())
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := newTestScanner().Scan(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestScan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file", "x")

	_, err := newTestScanner().Scan(context.Background(), filepath.Join(root, "file"))
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestScan_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "RiffCollection120BPM/Render/120~1~A~.mp3", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestScanner().Scan(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_CustomLayout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Song140/Bounce/140~1~hook~1.wav", "hook")

	layout := Layout{GroupDirPrefix: "Song", AssetDir: "Bounce", AssetExt: ".wav"}
	res, err := NewScanner(layout, logger.Nop()).Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, 140, res.Groups[0].Key)
	assert.Equal(t, models.StatusInUse, res.Groups[0].Assets[0].Status)
}

func TestDiscoveryError(t *testing.T) {
	err := &DiscoveryError{Path: "/x/y.mp3", Err: ErrMalformedAssetName}

	assert.Contains(t, err.Error(), "/x/y.mp3")
	assert.ErrorIs(t, err, ErrMalformedAssetName)
}

func TestScan_SkipsNonUTF8Names(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "RiffCollection120BPM/Render/120~1~A~.mp3", "ok")
	writeFile(t, root, "RiffCollection120BPM/Render/120~2~r\xffiff~.mp3", "bad label")

	res, err := newTestScanner().Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	require.Len(t, res.Groups[0].Assets, 1)
	assert.Equal(t, "A", res.Groups[0].Assets[0].Label)

	require.Len(t, res.Skipped, 1)
	var de *DiscoveryError
	require.True(t, errors.As(res.Skipped[0], &de))
	assert.ErrorIs(t, res.Skipped[0], ErrMalformedAssetName)
}
