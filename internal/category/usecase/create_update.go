package usecase

import (
	"context"

	"hardware-inventory/internal/category"
	"hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/model"
)

// Create adds a new Category. The image, when attached, is stored before the record is inserted
// and discarded again if the insert fails.
func (uc *implUseCase) Create(ctx context.Context, input category.CreateCategoryInput) (category.CreateCategoryOutput, error) {
	fe := model.FieldErrors{}
	candidate := model.Category{Name: input.Name, Description: input.Description}
	if err := collect(fe, candidate.Validate()); err != nil {
		uc.release(ctx, input.Image)
		return category.CreateCategoryOutput{}, err
	}

	up, err := uc.checkImage(ctx, input.Image, fe)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create checkImage: %v", err)
		return category.CreateCategoryOutput{}, err
	}
	if len(fe) > 0 {
		uc.release(ctx, up)
		return category.CreateCategoryOutput{}, fe
	}

	ref := model.NoImage()
	if up != nil {
		if ref, err = uc.img.Store(ctx, model.ImageKindCategory, *up); err != nil {
			uc.l.Errorf(ctx, "uc.Create Store: %v", err)
			return category.CreateCategoryOutput{}, err
		}
	}

	created, err := uc.repo.CreateCategory(ctx, repository.CreateCategoryOptions{
		Name:        input.Name,
		Description: input.Description,
		Image:       ref,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		if dErr := uc.img.Discard(ctx, ref); dErr != nil {
			uc.l.Warnf(ctx, "uc.Create Discard %s: %v", ref, dErr)
		}
		return category.CreateCategoryOutput{}, err
	}

	return category.CreateCategoryOutput{Category: created}, nil
}

// Update modifies a Category in place. A new image is attached before the previous one is discarded.
func (uc *implUseCase) Update(ctx context.Context, input category.UpdateCategoryInput) (category.UpdateCategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repository.GetOneCategoryOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
		uc.release(ctx, input.Image)
		return category.UpdateCategoryOutput{}, err
	}
	if existing.ID == "" {
		uc.release(ctx, input.Image)
		return category.UpdateCategoryOutput{}, category.ErrCategoryNotFound
	}

	merged := existing
	merged.Name = uc.coalesce(input.Name, existing.Name)
	merged.Description = uc.coalesce(input.Description, existing.Description)

	fe := model.FieldErrors{}
	if err := collect(fe, merged.Validate()); err != nil {
		uc.release(ctx, input.Image)
		return category.UpdateCategoryOutput{}, err
	}
	up, err := uc.checkImage(ctx, input.Image, fe)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update checkImage: %v", err)
		return category.UpdateCategoryOutput{}, err
	}
	if len(fe) > 0 {
		uc.release(ctx, up)
		return category.UpdateCategoryOutput{}, fe
	}

	next := existing.Image
	switch {
	case up != nil:
		if next, err = uc.img.Store(ctx, model.ImageKindCategory, *up); err != nil {
			uc.l.Errorf(ctx, "uc.Update Store: %v", err)
			return category.UpdateCategoryOutput{}, err
		}
	case input.RemoveImage:
		next = model.NoImage()
	}

	var updated model.Category
	err = uc.img.Replace(ctx, existing.Image, next, func(ctx context.Context) error {
		c, err := uc.repo.UpdateCategory(ctx, repository.UpdateCategoryOptions{
			ID:          merged.ID,
			Name:        merged.Name,
			Description: merged.Description,
			Image:       next,
		})
		if err != nil {
			return err
		}
		if c.ID == "" {
			return category.ErrCategoryNotFound
		}
		updated = c
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return category.UpdateCategoryOutput{}, err
	}

	return category.UpdateCategoryOutput{Category: updated}, nil
}
