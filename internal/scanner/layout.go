package scanner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/riff-pack/models"
)

// assetStemPattern matches "<tempo>~<index>~<label>~<status?>". The label may
// be empty but never contains whitespace.
var assetStemPattern = regexp.MustCompile(`^(\d+)~(\d+)~(\S*)~(\d?)$`)

// Layout names the directories and files of a source tree.
type Layout struct {
	GroupDirPrefix string
	GroupDirSuffix string
	AssetDir       string
	AssetExt       string
}

// DefaultLayout returns the layout produced by the rendering workflow.
func DefaultLayout() Layout {
	return Layout{
		GroupDirPrefix: "RiffCollection",
		GroupDirSuffix: "BPM",
		AssetDir:       "Render",
		AssetExt:       ".mp3",
	}
}

// GroupDir returns the directory name of the group with the given key.
func (l Layout) GroupDir(key int) string {
	return l.GroupDirPrefix + strconv.Itoa(key) + l.GroupDirSuffix
}

// AssetFile returns the file name under which entry is stored. StatusNone is
// written as an empty status.
func (l Layout) AssetFile(entry models.ManifestEntry) string {
	status := ""
	if entry.Status != models.StatusNone {
		status = strconv.Itoa(int(entry.Status))
	}
	return fmt.Sprintf("%d~%d~%s~%s%s", entry.GroupKey, entry.Index, entry.Label, status, l.AssetExt)
}

// matchesGroupPrefix reports whether a directory is a group candidate at all.
// Candidates that then fail ParseGroupDir are reported as skipped.
func (l Layout) matchesGroupPrefix(name string) bool {
	return strings.HasPrefix(name, l.GroupDirPrefix)
}

// ParseGroupDir extracts the group key from a directory name. The key must be
// a positive decimal number.
func (l Layout) ParseGroupDir(name string) (int, error) {
	digits, ok := strings.CutPrefix(name, l.GroupDirPrefix)
	if !ok {
		return 0, ErrMalformedGroupName
	}
	digits, ok = strings.CutSuffix(digits, l.GroupDirSuffix)
	if !ok || !isDigits(digits) {
		return 0, ErrMalformedGroupName
	}

	key, err := strconv.Atoi(digits)
	if err != nil || key <= 0 {
		return 0, ErrMalformedGroupName
	}
	return key, nil
}

// ParseAssetFile parses a file name (with extension) into an asset without
// data. The tempo in the name is not checked against the group. Names that
// are not valid UTF-8 are malformed: their label could not be packed as is.
func (l Layout) ParseAssetFile(name string) (models.Asset, error) {
	if !l.hasAssetExt(name) {
		return models.Asset{}, ErrMalformedAssetName
	}
	if !utf8.ValidString(name) {
		return models.Asset{}, fmt.Errorf("%w: not valid UTF-8", ErrMalformedAssetName)
	}

	stem := name[:len(name)-len(l.AssetExt)]
	m := assetStemPattern.FindStringSubmatch(stem)
	if m == nil {
		return models.Asset{}, ErrMalformedAssetName
	}

	index, err := strconv.Atoi(m[2])
	if err != nil {
		return models.Asset{}, ErrMalformedAssetName
	}

	status := models.StatusNone
	if m[4] != "" {
		status = models.AssetStatus(int(m[4][0] - '0'))
		if !status.Valid() {
			return models.Asset{}, fmt.Errorf("%w: %s", ErrInvalidStatus, m[4])
		}
	}

	return models.Asset{Index: index, Label: m[3], Status: status}, nil
}

// hasAssetExt reports whether name ends in the asset extension, ignoring case.
func (l Layout) hasAssetExt(name string) bool {
	return len(name) > len(l.AssetExt) &&
		strings.EqualFold(name[len(name)-len(l.AssetExt):], l.AssetExt)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
