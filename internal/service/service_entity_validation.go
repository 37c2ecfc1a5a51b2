package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/connector-sync/internal/validators"
	"github.com/MKhiriev/connector-sync/models"
)

// EntityValidationService checks DTOs before they reach the wrapped
// [EntitySyncService]. Invalid input fails with [ErrInvalidDataProvided]
// without any remote call.
type EntityValidationService[D models.Payload] struct {
	inner     EntitySyncService[D]
	validator validators.Validator
}

func NewEntityValidationService[D models.Payload](v validators.Validator) EntitySyncServiceWrapper[D] {
	return &EntityValidationService[D]{validator: v}
}

func (v *EntityValidationService[D]) Wrap(inner EntitySyncService[D]) EntitySyncService[D] {
	v.inner = inner
	return v
}

func (v *EntityValidationService[D]) GetWithSyncCheck(ctx context.Context, id int64) (models.Synced[D], error) {
	if id <= 0 {
		return models.Synced[D]{}, fmt.Errorf("%w: id must be positive", ErrInvalidDataProvided)
	}
	return v.inner.GetWithSyncCheck(ctx, id)
}

func (v *EntityValidationService[D]) GetAllWithSyncCheck(ctx context.Context, endpointID int64) ([]models.Synced[D], error) {
	if endpointID <= 0 {
		return nil, fmt.Errorf("%w: endpoint id must be positive", ErrInvalidDataProvided)
	}
	return v.inner.GetAllWithSyncCheck(ctx, endpointID)
}

func (v *EntityValidationService[D]) Create(ctx context.Context, endpointID int64, dto D) (models.Synced[D], error) {
	if endpointID <= 0 {
		return models.Synced[D]{}, fmt.Errorf("%w: endpoint id must be positive", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, dto); err != nil {
		return models.Synced[D]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, endpointID, dto)
}

func (v *EntityValidationService[D]) Update(ctx context.Context, id int64, dto D) (models.Synced[D], error) {
	if id <= 0 {
		return models.Synced[D]{}, fmt.Errorf("%w: id must be positive", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, dto); err != nil {
		return models.Synced[D]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, id, dto)
}

func (v *EntityValidationService[D]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidDataProvided)
	}
	return v.inner.Delete(ctx, id)
}
