package usecase

import (
	"context"
	"errors"

	repo "hardware-inventory/internal/image/repository"
	"hardware-inventory/internal/model"
)

// Replace attaches next through attach and only afterwards discards prev.
// A failed discard of prev is logged and left for the orphan sweep.
func (uc *implUseCase) Replace(ctx context.Context, prev, next model.ImageRef, attach func(ctx context.Context) error) error {
	if err := attach(ctx); err != nil {
		if !next.IsZero() && !next.Same(prev) {
			if derr := uc.Discard(ctx, next); derr != nil {
				uc.l.Warnf(ctx, "uc.Replace Discard next %s: %v", next, derr)
			}
		}
		return err
	}

	if prev.IsZero() || prev.Same(next) {
		return nil
	}
	if err := uc.Discard(ctx, prev); err != nil {
		uc.l.Warnf(ctx, "uc.Replace Discard prev %s: %v", prev, err)
	}
	return nil
}

// Discard deletes the blob behind ref. Deleting nothing, or something already gone, succeeds.
func (uc *implUseCase) Discard(ctx context.Context, ref model.ImageRef) error {
	if ref.IsZero() {
		return nil
	}

	err := uc.repo.Delete(ctx, ref)
	if errors.Is(err, repo.ErrBlobNotFound) {
		return nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Discard Delete %s: %v", ref, err)
		return err
	}
	return nil
}
