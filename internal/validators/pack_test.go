// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/riff-pack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validGroups() []models.AssetGroup {
	return []models.AssetGroup{
		{Key: 120, Assets: []models.Asset{
			{Index: 1, Label: "A", Status: models.StatusNone},
			{Index: 2, Label: "B", Status: models.StatusInUse},
		}},
		{Key: 95},
	}
}

func validManifest() models.Manifest {
	return models.NewManifest(
		models.ManifestEntry{ID: "a", GroupKey: 120, Index: 1, Label: "A"},
		models.ManifestEntry{ID: "b", GroupKey: 120, Index: 2, Label: "B", Status: models.StatusRejected},
	)
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

func TestPackValidator_Groups(t *testing.T) {
	v := NewPackValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func([]models.AssetGroup) []models.AssetGroup
		target error
	}{
		{name: "valid", mutate: func(g []models.AssetGroup) []models.AssetGroup { return g }},
		{name: "empty list", mutate: func([]models.AssetGroup) []models.AssetGroup { return nil }},
		{
			name:   "zero key",
			mutate: func(g []models.AssetGroup) []models.AssetGroup { g[1].Key = 0; return g },
			target: ErrInvalidGroupKey,
		},
		{
			name:   "negative key",
			mutate: func(g []models.AssetGroup) []models.AssetGroup { g[0].Key = -120; return g },
			target: ErrInvalidGroupKey,
		},
		{
			name:   "duplicate key",
			mutate: func(g []models.AssetGroup) []models.AssetGroup { g[1].Key = 120; return g },
			target: ErrDuplicateGroupKey,
		},
		{
			name:   "negative index",
			mutate: func(g []models.AssetGroup) []models.AssetGroup { g[0].Assets[0].Index = -1; return g },
			target: ErrInvalidAssetIndex,
		},
		{
			name:   "unknown status",
			mutate: func(g []models.AssetGroup) []models.AssetGroup { g[0].Assets[1].Status = 9; return g },
			target: ErrInvalidAssetStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.mutate(validGroups()))
			if tt.target == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestPackValidator_GroupForms(t *testing.T) {
	v := NewPackValidator()
	g := models.AssetGroup{Key: 0}

	assert.ErrorIs(t, v.Validate(context.Background(), g), ErrInvalidGroupKey)
	assert.ErrorIs(t, v.Validate(context.Background(), &g), ErrInvalidGroupKey)
}

func TestPackValidator_FieldScoping(t *testing.T) {
	v := NewPackValidator()
	groups := validGroups()
	groups[1].Key = 120

	// Only the positivity rule: the duplicate passes.
	require.NoError(t, v.Validate(context.Background(), groups, FieldGroupKey))
	assert.ErrorIs(t, v.Validate(context.Background(), groups, FieldUniqueGroupKeys), ErrDuplicateGroupKey)

	assert.ErrorIs(t, v.Validate(context.Background(), groups, "nonsense"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), groups, FieldEntryID), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Manifest
// ---------------------------------------------------------------------------

func TestPackValidator_Manifest(t *testing.T) {
	v := NewPackValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validManifest()))
	m := validManifest()
	require.NoError(t, v.Validate(ctx, &m))

	dup := validManifest()
	dup.Entries[1].ID = "a"
	assert.ErrorIs(t, v.Validate(ctx, dup), ErrDuplicateEntryID)

	empty := validManifest()
	empty.Entries[0].ID = ""
	assert.ErrorIs(t, v.Validate(ctx, empty), ErrEmptyEntryID)

	badKey := validManifest()
	badKey.Entries[0].GroupKey = 0
	assert.ErrorIs(t, v.Validate(ctx, badKey), ErrInvalidGroupKey)

	badStatus := validManifest()
	badStatus.Entries[0].Status = 5
	assert.ErrorIs(t, v.Validate(ctx, badStatus.Entries[0]), ErrInvalidAssetStatus)
	assert.ErrorIs(t, v.Validate(ctx, &badStatus.Entries[0]), ErrInvalidAssetStatus)
}

func TestPackValidator_UnsupportedType(t *testing.T) {
	err := NewPackValidator().Validate(context.Background(), "string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
