package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/riff-pack/internal/validators"
	"github.com/MKhiriev/riff-pack/models"
)

type PackValidationService struct {
	inner     PackService
	validator validators.Validator
}

func NewPackValidationService() PackServiceWrapper {
	return &PackValidationService{
		validator: validators.NewPackValidator(),
	}
}

// Pack rejects non-positive and repeated group keys and unknown statuses
// before anything is written to out.
func (v *PackValidationService) Pack(ctx context.Context, groups []models.AssetGroup, password string, out io.Writer) (models.PackReport, error) {
	if err := v.validator.Validate(ctx, groups); err != nil {
		return models.PackReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Pack(ctx, groups, password, out)
}

func (v *PackValidationService) Wrap(wrapped PackService) PackService {
	v.inner = wrapped
	return v
}
