package usecase

import (
	"context"

	"hardware-inventory/internal/category"
	"hardware-inventory/internal/category/repository"
	itemRepo "hardware-inventory/internal/item/repository"
)

// List returns every Category in insertion order, restricted to the requested fields.
func (uc *implUseCase) List(ctx context.Context, input category.ListCategoriesInput) (category.ListCategoriesOutput, error) {
	fields, err := parseFields(input.Fields)
	if err != nil {
		return category.ListCategoriesOutput{}, err
	}

	cats, err := uc.repo.ListCategories(ctx, repository.ListCategoriesOptions{Fields: fields})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListCategoriesOutput{}, err
	}

	return category.ListCategoriesOutput{Categories: cats, Fields: fields}, nil
}

// Detail retrieves a Category with one page of its Items.
func (uc *implUseCase) Detail(ctx context.Context, input category.DetailCategoryInput) (category.DetailCategoryOutput, error) {
	cat, err := uc.repo.GetOneCategory(ctx, repository.GetOneCategoryOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCategory: %v", err)
		return category.DetailCategoryOutput{}, err
	}
	if cat.ID == "" {
		return category.DetailCategoryOutput{}, category.ErrCategoryNotFound
	}

	items, total, err := uc.itemRepo.ListItems(ctx, itemRepo.ListItemsOptions{
		CategoryID: cat.ID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListItems: %v", err)
		return category.DetailCategoryOutput{}, err
	}

	return category.DetailCategoryOutput{
		Category: cat,
		Items:    items,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}
