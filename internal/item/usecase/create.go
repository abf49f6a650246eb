package usecase

import (
	"context"
	"errors"

	catRepo "hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/item"
	repo "hardware-inventory/internal/item/repository"
	"hardware-inventory/internal/model"
)

// Create files a new Item under an existing Category, storing its image first when one is attached.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	fe := model.FieldErrors{}

	candidate := model.Item{
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		NumberInStock: input.NumberInStock,
	}
	if err := collect(fe, candidate.Validate()); err != nil {
		uc.release(ctx, input.Image)
		return item.CreateItemOutput{}, err
	}

	// The owning category must resolve now. A delete racing this check is caught by the foreign key.
	if input.CategoryID != "" {
		cat, err := uc.catRepo.GetOneCategory(ctx, catRepo.GetOneCategoryOptions{ID: input.CategoryID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
			uc.release(ctx, input.Image)
			return item.CreateItemOutput{}, err
		}
		if cat.ID == "" {
			fe.Add("category_id", item.ErrCategoryNotFound.Error())
		}
	}

	up, err := uc.checkImage(ctx, input.Image, fe)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create checkImage: %v", err)
		return item.CreateItemOutput{}, err
	}
	if len(fe) > 0 {
		uc.release(ctx, up)
		return item.CreateItemOutput{}, fe
	}

	ref := model.NoImage()
	if up != nil {
		if ref, err = uc.img.Store(ctx, model.ImageKindItem, *up); err != nil {
			uc.l.Errorf(ctx, "uc.Create Store: %v", err)
			return item.CreateItemOutput{}, err
		}
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		NumberInStock: input.NumberInStock,
		Image:         ref,
	})
	if err != nil {
		uc.discardNew(ctx, ref)
		if errors.Is(err, repo.ErrCategoryMissing) {
			return item.CreateItemOutput{}, categoryMissing()
		}
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}
