package container

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// EntryInfo describes a stored entry without reading its data.
type EntryInfo struct {
	Name             string
	Method           Method
	CompressedSize   uint64
	UncompressedSize uint64
}

// Archive is an opened container.
type Archive struct {
	files map[string]*zip.File
	names []string
}

// Open parses b for random access. Bytes that are not a ZIP archive, or an
// archive with repeated entry names, fail with [ErrInvalidContainer].
func Open(b []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContainer, err)
	}
	registerDecompressors(zr)

	a := &Archive{
		files: make(map[string]*zip.File, len(zr.File)),
		names: make([]string, 0, len(zr.File)),
	}
	for _, f := range zr.File {
		if _, ok := a.files[f.Name]; ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidContainer, ErrDuplicateEntry, f.Name)
		}
		a.files[f.Name] = f
		a.names = append(a.names, f.Name)
	}

	return a, nil
}

// Read returns the contents of the named entry.
func (a *Archive) Read(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open entry %q: %w", ErrInvalidContainer, name, err)
	}
	defer rc.Close()

	// A CRC mismatch surfaces here as zip.ErrChecksum.
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read entry %q: %w", ErrInvalidContainer, name, err)
	}

	return data, nil
}

// Names returns the entry names in archive order.
func (a *Archive) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Has reports whether an entry with the given name exists.
func (a *Archive) Has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.names)
}

// Entries returns header information for every entry in archive order.
func (a *Archive) Entries() []EntryInfo {
	out := make([]EntryInfo, 0, len(a.names))
	for _, name := range a.names {
		f := a.files[name]
		out = append(out, EntryInfo{
			Name:             f.Name,
			Method:           Method(f.Method),
			CompressedSize:   f.CompressedSize64,
			UncompressedSize: f.UncompressedSize64,
		})
	}
	return out
}
