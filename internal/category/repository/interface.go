package repository

import (
	"context"

	"hardware-inventory/internal/model"
)

// Repository is the composed interface for the category data store.
// Every method runs inside the transaction carried by ctx, if any.
type Repository interface {
	CategoryRepository
}

// CategoryRepository defines all data access methods for the Category entity.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
	// GetOneCategory returns a zero Category (ID == "") when nothing matches.
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (model.Category, error)
	ListCategories(ctx context.Context, opt ListCategoriesOptions) ([]model.Category, error)
	// UpdateCategory returns a zero Category when the id does not resolve.
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (model.Category, error)
	// DeleteCategory removes the record alone and returns it, or a zero Category when
	// the id does not resolve. It fails with ErrHasItems while items reference it.
	DeleteCategory(ctx context.Context, id string) (model.Category, error)
	// ListImageRefs returns every image reference held by a category.
	ListImageRefs(ctx context.Context) ([]model.ImageRef, error)
}
