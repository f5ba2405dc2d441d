package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/riff-pack/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldGroupKey checks that group keys are positive.
	FieldGroupKey = "group_key"

	// FieldUniqueGroupKeys checks that no two groups share a key.
	FieldUniqueGroupKeys = "unique_group_keys"

	// FieldAssets checks every asset's index and status.
	FieldAssets = "assets"

	// FieldEntryID checks that manifest entry ids are present.
	FieldEntryID = "entry_id"

	// FieldUniqueEntryIDs checks that no two manifest entries share an id.
	FieldUniqueEntryIDs = "unique_entry_ids"

	// FieldStatus checks that statuses belong to the closed enumeration.
	FieldStatus = "status"
)

var groupFields = []string{FieldGroupKey, FieldUniqueGroupKeys, FieldAssets}

var manifestFields = []string{FieldEntryID, FieldUniqueEntryIDs, FieldGroupKey, FieldStatus}

// PackValidator implements the Validator interface for the pack inputs
// ([]models.AssetGroup, models.AssetGroup) and the manifest
// (models.Manifest, models.ManifestEntry). Value and pointer forms are both
// accepted. With no fields every rule for the type is applied.
type PackValidator struct {
}

// NewPackValidator constructs a new PackValidator and returns it as the
// Validator interface.
func NewPackValidator() Validator {
	return &PackValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *PackValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.AssetGroup:
		return v.validateGroups(value, fields...)
	case models.AssetGroup:
		return v.validateGroups([]models.AssetGroup{value}, fields...)
	case *models.AssetGroup:
		return v.validateGroups([]models.AssetGroup{*value}, fields...)

	case models.Manifest:
		return v.validateEntries(value.Entries, fields...)
	case *models.Manifest:
		return v.validateEntries(value.Entries, fields...)
	case models.ManifestEntry:
		return v.validateEntries([]models.ManifestEntry{value}, fields...)
	case *models.ManifestEntry:
		return v.validateEntries([]models.ManifestEntry{*value}, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PackValidator) validateGroups(groups []models.AssetGroup, fields ...string) error {
	fields, err := resolveFields(fields, groupFields)
	if err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(groups))
	for _, g := range groups {
		for _, field := range fields {
			switch field {
			case FieldGroupKey:
				if g.Key <= 0 {
					return fmt.Errorf("%w: %d", ErrInvalidGroupKey, g.Key)
				}
			case FieldUniqueGroupKeys:
				if _, dup := seen[g.Key]; dup {
					return fmt.Errorf("%w: %d", ErrDuplicateGroupKey, g.Key)
				}
				seen[g.Key] = struct{}{}
			case FieldAssets:
				if err = validateAssets(g); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateAssets(g models.AssetGroup) error {
	for _, a := range g.Assets {
		if a.Index < 0 {
			return fmt.Errorf("%w: group %d index %d", ErrInvalidAssetIndex, g.Key, a.Index)
		}
		if !a.Status.Valid() {
			return fmt.Errorf("%w: group %d index %d status %d", ErrInvalidAssetStatus, g.Key, a.Index, int(a.Status))
		}
	}
	return nil
}

func (v *PackValidator) validateEntries(entries []models.ManifestEntry, fields ...string) error {
	fields, err := resolveFields(fields, manifestFields)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		for _, field := range fields {
			switch field {
			case FieldEntryID:
				if e.ID == "" {
					return ErrEmptyEntryID
				}
			case FieldUniqueEntryIDs:
				if _, dup := seen[e.ID]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateEntryID, e.ID)
				}
				seen[e.ID] = struct{}{}
			case FieldGroupKey:
				if e.GroupKey <= 0 {
					return fmt.Errorf("%w: %d", ErrInvalidGroupKey, e.GroupKey)
				}
			case FieldStatus:
				if !e.Status.Valid() {
					return fmt.Errorf("%w: %d", ErrInvalidAssetStatus, int(e.Status))
				}
			}
		}
	}
	return nil
}

// resolveFields returns allowed when fields is empty and rejects any field
// not in allowed.
func resolveFields(fields, allowed []string) ([]string, error) {
	if len(fields) == 0 {
		return allowed, nil
	}
	for _, f := range fields {
		if !slices.Contains(allowed, f) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return fields, nil
}
