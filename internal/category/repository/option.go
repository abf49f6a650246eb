package repository

import "hardware-inventory/internal/model"

// CreateCategoryOptions holds parameters for inserting a new Category.
type CreateCategoryOptions struct {
	Name        string
	Description string
	Image       model.ImageRef
}

// GetOneCategoryOptions holds filter parameters for fetching a single Category.
type GetOneCategoryOptions struct {
	ID string
}

// ListCategoriesOptions selects which fields are loaded. Empty means all.
// ID is always loaded and rows come back in insertion order.
type ListCategoriesOptions struct {
	Fields []model.CategoryField
}

// UpdateCategoryOptions holds the full set of mutable fields for a Category.
type UpdateCategoryOptions struct {
	ID          string
	Name        string
	Description string
	Image       model.ImageRef
}
