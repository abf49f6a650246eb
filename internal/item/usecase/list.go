package usecase

import (
	"context"

	catRepo "hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/item"
	repo "hardware-inventory/internal/item/repository"
	"hardware-inventory/internal/model"
)

// ListByCategory returns a page of the Items filed under a Category.
func (uc *implUseCase) ListByCategory(ctx context.Context, input item.ListByCategoryInput) (item.ListByCategoryOutput, error) {
	cat, err := uc.catRepo.GetOneCategory(ctx, catRepo.GetOneCategoryOptions{ID: input.CategoryID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByCategory GetOneCategory: %v", err)
		return item.ListByCategoryOutput{}, err
	}
	if cat.ID == "" {
		return item.ListByCategoryOutput{}, item.ErrCategoryNotFound
	}

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		CategoryID: input.CategoryID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByCategory ListItems: %v", err)
		return item.ListByCategoryOutput{}, err
	}

	return item.ListByCategoryOutput{
		Category: cat,
		Items:    items,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}

// Options lists the categories an item can be filed under. Fails with ErrNoCategories when there are none.
func (uc *implUseCase) Options(ctx context.Context) (item.OptionsOutput, error) {
	cats, err := uc.catRepo.ListCategories(ctx, catRepo.ListCategoriesOptions{
		Fields: []model.CategoryField{model.CategoryFieldName},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Options ListCategories: %v", err)
		return item.OptionsOutput{}, err
	}
	if len(cats) == 0 {
		return item.OptionsOutput{}, item.ErrNoCategories
	}
	return item.OptionsOutput{Categories: cats}, nil
}
