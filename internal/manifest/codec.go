// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/riff-pack/models"
)

// FileName is the fixed name of the manifest entry inside a container.
const FileName = "manifest.json"

type document struct {
	Entries []entry `json:"entries"`
}

type entry struct {
	ID       string `json:"id"`
	GroupKey int    `json:"groupKey"`
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Status   int    `json:"status"`
}

// Pointer fields let Decode tell an absent field from a zero value.
type rawDocument struct {
	Entries *[]rawEntry `json:"entries"`
}

type rawEntry struct {
	ID       *string `json:"id"`
	GroupKey *int    `json:"groupKey"`
	Index    *int    `json:"index"`
	Label    *string `json:"label"`
	Status   *int    `json:"status"`
}

// Encode serializes m. A manifest without entries is written with an empty
// "entries" array, never null. Ids and labels must be valid UTF-8.
func Encode(m models.Manifest) ([]byte, error) {
	doc := document{Entries: make([]entry, 0, len(m.Entries))}
	for i, e := range m.Entries {
		if !utf8.ValidString(e.ID) {
			return nil, fmt.Errorf("%w: entry %d: id: %w", ErrInvalidManifest, i, ErrInvalidUTF8)
		}
		if !utf8.ValidString(e.Label) {
			return nil, fmt.Errorf("%w: entry %d: label %q: %w", ErrInvalidManifest, i, e.Label, ErrInvalidUTF8)
		}
		doc.Entries = append(doc.Entries, entry{
			ID:       e.ID,
			GroupKey: e.GroupKey,
			Index:    e.Index,
			Label:    e.Label,
			Status:   int(e.Status),
		})
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return b, nil
}

// Decode parses a manifest produced by [Encode]. The result always has a
// non-nil entry list, like [models.NewManifest]; a zero Manifest therefore
// decodes back as NewManifest(). Field order is irrelevant and
// unknown fields are ignored. Every returned error wraps [ErrInvalidManifest].
func Decode(b []byte) (models.Manifest, error) {
	var raw rawDocument
	if err := json.Unmarshal(b, &raw); err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if raw.Entries == nil {
		return models.Manifest{}, fmt.Errorf("%w: %w: entries", ErrInvalidManifest, ErrMissingField)
	}

	m := models.Manifest{Entries: make([]models.ManifestEntry, 0, len(*raw.Entries))}
	for i, re := range *raw.Entries {
		e, err := re.toModel()
		if err != nil {
			return models.Manifest{}, fmt.Errorf("%w: entry %d: %w", ErrInvalidManifest, i, err)
		}
		m.Entries = append(m.Entries, e)
	}

	return m, nil
}

func (r rawEntry) toModel() (models.ManifestEntry, error) {
	switch {
	case r.ID == nil:
		return models.ManifestEntry{}, fmt.Errorf("%w: id", ErrMissingField)
	case r.GroupKey == nil:
		return models.ManifestEntry{}, fmt.Errorf("%w: groupKey", ErrMissingField)
	case r.Index == nil:
		return models.ManifestEntry{}, fmt.Errorf("%w: index", ErrMissingField)
	case r.Label == nil:
		return models.ManifestEntry{}, fmt.Errorf("%w: label", ErrMissingField)
	case r.Status == nil:
		return models.ManifestEntry{}, fmt.Errorf("%w: status", ErrMissingField)
	}

	if *r.ID == "" {
		return models.ManifestEntry{}, fmt.Errorf("empty id")
	}
	if *r.GroupKey <= 0 {
		return models.ManifestEntry{}, fmt.Errorf("group key %d is not positive", *r.GroupKey)
	}
	status := models.AssetStatus(*r.Status)
	if !status.Valid() {
		return models.ManifestEntry{}, fmt.Errorf("unknown status %d", *r.Status)
	}

	return models.ManifestEntry{
		ID:       *r.ID,
		GroupKey: *r.GroupKey,
		Index:    *r.Index,
		Label:    *r.Label,
		Status:   status,
	}, nil
}
