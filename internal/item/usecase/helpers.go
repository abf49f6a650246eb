package usecase

import (
	"context"
	"errors"

	"hardware-inventory/internal/image"
	"hardware-inventory/internal/item"
	"hardware-inventory/internal/model"
)

// coalesce returns newVal when provided, otherwise the existing value.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// collect merges a record validation result into fe. Non-validation errors are returned.
func collect(fe model.FieldErrors, err error) error {
	if err == nil {
		return nil
	}
	found, ok := model.AsFieldErrors(err)
	if !ok {
		return err
	}
	for field, msgs := range found {
		for _, m := range msgs {
			fe.Add(field, m)
		}
	}
	return nil
}

// checkImage validates an optional staged upload and records rejections under "image".
// It returns the validated upload, or nil when there is none or it was rejected.
func (uc *implUseCase) checkImage(ctx context.Context, up *image.Upload, fe model.FieldErrors) (*image.Upload, error) {
	if up == nil {
		return nil, nil
	}
	validated, err := uc.img.Validate(ctx, *up)
	var ve *image.ValidationError
	if errors.As(err, &ve) {
		for _, m := range ve.Messages() {
			fe.Add("image", m)
		}
		return nil, nil
	}
	if err != nil {
		uc.img.Release(ctx, *up)
		return nil, err
	}
	return &validated, nil
}

func (uc *implUseCase) release(ctx context.Context, up *image.Upload) {
	if up != nil {
		uc.img.Release(ctx, *up)
	}
}

// discardNew drops a blob stored for a write that did not happen.
func (uc *implUseCase) discardNew(ctx context.Context, ref model.ImageRef) {
	if err := uc.img.Discard(ctx, ref); err != nil {
		uc.l.Warnf(ctx, "uc.discardNew %s: %v", ref, err)
	}
}

func categoryMissing() model.FieldErrors {
	return model.FieldErrors{"category_id": {item.ErrCategoryNotFound.Error()}}
}
