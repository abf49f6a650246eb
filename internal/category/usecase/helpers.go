package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hardware-inventory/internal/category"
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/model"
)

func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// parseFields maps requested field names to projectable fields, in request order without duplicates.
func parseFields(raw []string) ([]model.CategoryField, error) {
	if len(raw) == 0 {
		return model.CategoryFields, nil
	}
	seen := make(map[model.CategoryField]bool, len(raw))
	fields := make([]model.CategoryField, 0, len(raw))
	for _, r := range raw {
		f := model.CategoryField(strings.ToLower(strings.TrimSpace(r)))
		if f == "" {
			continue
		}
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %q", category.ErrUnknownField, r)
		}
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return model.CategoryFields, nil
	}
	return fields, nil
}

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
