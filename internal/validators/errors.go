package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidGroupKey    = errors.New("group key must be positive")
	ErrDuplicateGroupKey  = errors.New("duplicate group key")
	ErrInvalidAssetIndex  = errors.New("asset index must not be negative")
	ErrInvalidAssetStatus = errors.New("unknown asset status")
	ErrEmptyEntryID       = errors.New("manifest entry id is required")
	ErrDuplicateEntryID   = errors.New("duplicate manifest entry id")
)
