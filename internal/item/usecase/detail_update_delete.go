package usecase

import (
	"context"
	"errors"

	catRepo "hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/item"
	repo "hardware-inventory/internal/item/repository"
	"hardware-inventory/internal/model"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update modifies an existing Item. A new image is attached before the old one is discarded.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		uc.release(ctx, input.Image)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		uc.release(ctx, input.Image)
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	merged := existing
	merged.CategoryID = uc.coalesce(input.CategoryID, existing.CategoryID)
	merged.Name = uc.coalesce(input.Name, existing.Name)
	merged.Description = uc.coalesce(input.Description, existing.Description)
	if input.Price != nil {
		merged.Price = *input.Price
	}
	if input.NumberInStock != nil {
		merged.NumberInStock = *input.NumberInStock
	}

	fe := model.FieldErrors{}
	if err := collect(fe, merged.Validate()); err != nil {
		uc.release(ctx, input.Image)
		return item.UpdateItemOutput{}, err
	}

	if merged.CategoryID != existing.CategoryID {
		cat, err := uc.catRepo.GetOneCategory(ctx, catRepo.GetOneCategoryOptions{ID: merged.CategoryID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
			uc.release(ctx, input.Image)
			return item.UpdateItemOutput{}, err
		}
		if cat.ID == "" {
			fe.Add("category_id", item.ErrCategoryNotFound.Error())
		}
	}

	up, err := uc.checkImage(ctx, input.Image, fe)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update checkImage: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if len(fe) > 0 {
		uc.release(ctx, up)
		return item.UpdateItemOutput{}, fe
	}

	next := existing.Image
	switch {
	case up != nil:
		if next, err = uc.img.Store(ctx, model.ImageKindItem, *up); err != nil {
			uc.l.Errorf(ctx, "uc.Update Store: %v", err)
			return item.UpdateItemOutput{}, err
		}
	case input.RemoveImage:
		next = model.NoImage()
	}

	var updated model.Item
	err = uc.img.Replace(ctx, existing.Image, next, func(ctx context.Context) error {
		u, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:            merged.ID,
			CategoryID:    merged.CategoryID,
			Name:          merged.Name,
			Description:   merged.Description,
			Price:         merged.Price,
			NumberInStock: merged.NumberInStock,
			Image:         next,
		})
		if err != nil {
			return err
		}
		if u.ID == "" {
			return item.ErrItemNotFound
		}
		updated = u
		return nil
	})
	if errors.Is(err, repo.ErrCategoryMissing) {
		return item.UpdateItemOutput{}, categoryMissing()
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}

	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes an Item, then its image. A failed image removal is logged, not returned.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	if deleted.ID == "" {
		return item.ErrItemNotFound
	}

	if err := uc.img.Discard(ctx, deleted.Image); err != nil {
		uc.l.Warnf(ctx, "uc.Delete Discard %s: %v", deleted.Image, err)
	}
	return nil
}
