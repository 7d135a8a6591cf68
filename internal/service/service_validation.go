package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/validators"
	"github.com/MKhiriev/culinary-server/models"
)

// ClassValidationService checks request payloads before they reach the
// wrapped ClassService.
type ClassValidationService struct {
	inner     ClassService
	validator validators.Validator
}

func NewClassValidationService() ClassServiceWrapper {
	return &ClassValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *ClassValidationService) CreateClass(ctx context.Context, class models.Class) (models.InsertResult, error) {
	if err := v.validator.Validate(ctx, class); err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateClass(ctx, class)
}

func (v *ClassValidationService) GetClasses(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	return v.inner.GetClasses(ctx, filter)
}

func (v *ClassValidationService) GetInstructorClasses(ctx context.Context, email string) ([]models.Class, error) {
	return v.inner.GetInstructorClasses(ctx, email)
}

func (v *ClassValidationService) Approve(ctx context.Context, id string) (models.UpdateResult, error) {
	return v.inner.Approve(ctx, id)
}

func (v *ClassValidationService) Deny(ctx context.Context, id string) (models.UpdateResult, error) {
	return v.inner.Deny(ctx, id)
}

func (v *ClassValidationService) AddFeedback(ctx context.Context, id, feedback string) (models.UpdateResult, error) {
	if err := v.validator.Validate(ctx, models.FeedbackRequest{ID: id, Feedback: feedback}); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddFeedback(ctx, id, feedback)
}

func (v *ClassValidationService) Wrap(inner ClassService) ClassService {
	v.inner = inner
	return v
}

// CartValidationService checks cart items before they reach the wrapped
// CartService.
type CartValidationService struct {
	inner     CartService
	validator validators.Validator
}

func NewCartValidationService() CartServiceWrapper {
	return &CartValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *CartValidationService) AddItem(ctx context.Context, item models.CartItem) (models.InsertResult, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddItem(ctx, item)
}

func (v *CartValidationService) GetItems(ctx context.Context, email string) ([]models.CartItem, error) {
	return v.inner.GetItems(ctx, email)
}

func (v *CartValidationService) RemoveItem(ctx context.Context, id, email string) (models.DeleteResult, error) {
	return v.inner.RemoveItem(ctx, id, email)
}

func (v *CartValidationService) Wrap(inner CartService) CartService {
	v.inner = inner
	return v
}
