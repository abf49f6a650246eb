package usecase

import (
	"context"
	"os"

	"github.com/google/uuid"

	"hardware-inventory/internal/image"
	repo "hardware-inventory/internal/image/repository"
	"hardware-inventory/internal/model"
)

// Store streams a validated upload to the backend under a generated name.
// The staged copy is removed whether or not the write succeeds.
func (uc *implUseCase) Store(ctx context.Context, kind model.ImageKind, up image.Upload) (model.ImageRef, error) {
	if !up.Validated() {
		uc.Release(ctx, up)
		return model.ImageRef{}, image.ErrNotValidated
	}
	defer uc.Release(ctx, up)

	f, err := os.Open(up.Path)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Store Open: %v", err)
		return model.ImageRef{}, err
	}
	defer f.Close()

	ref, err := uc.repo.Put(ctx, repo.PutOptions{
		Kind:        kind,
		Name:        uuid.NewString() + up.Extension,
		ContentType: up.ContentType,
		Body:        f,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Store Put: %v", err)
		return model.ImageRef{}, err
	}

	return ref, nil
}
