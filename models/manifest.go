package models

// ManifestEntry describes one packed asset. ID is the join key between the
// manifest and the container entry holding the asset bytes.
type ManifestEntry struct {
	ID       string
	GroupKey int
	Index    int
	Label    string
	Status   AssetStatus
}

// Manifest is the metadata index of a pack. Entry order follows the order in
// which assets were discovered; it is reproduced but carries no meaning.
type Manifest struct {
	Entries []ManifestEntry
}

// NewManifest returns a manifest with an empty, non-nil entry list.
func NewManifest(entries ...ManifestEntry) Manifest {
	m := Manifest{Entries: make([]ManifestEntry, 0, len(entries))}
	m.Entries = append(m.Entries, entries...)
	return m
}

// Len returns the number of entries in the manifest.
func (m Manifest) Len() int {
	return len(m.Entries)
}
