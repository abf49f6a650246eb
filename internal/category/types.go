package category

import (
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/model"
)

// --- UseCase Inputs ---

// ListCategoriesInput selects the fields to load. Empty means all of them.
type ListCategoriesInput struct {
	Fields []string
}

type DetailCategoryInput struct {
	ID     string
	Limit  int
	Offset int
}

type CreateCategoryInput struct {
	Name        string
	Description string
	// Image is an optional staged upload. The use case owns it from here on.
	Image *image.Upload
}

// UpdateCategoryInput carries a partial update. Empty strings keep the current value.
type UpdateCategoryInput struct {
	ID          string
	Name        string
	Description string
	Image       *image.Upload
	RemoveImage bool
}

// --- UseCase Outputs ---

type ListCategoriesOutput struct {
	Categories []model.Category
	Fields     []model.CategoryField
}

type DetailCategoryOutput struct {
	Category model.Category
	Items    []model.Item
	Total    int
	Limit    int
	Offset   int
}

type CreateCategoryOutput struct {
	Category model.Category
}

type UpdateCategoryOutput struct {
	Category model.Category
}

// DeleteState tracks a cascade delete.
type DeleteState string

const (
	DeleteStatePending     DeleteState = "pending"
	DeleteStateItemsPurged DeleteState = "items_purged"
	DeleteStateCommitted   DeleteState = "committed"
	DeleteStateAborted     DeleteState = "aborted"
)

type DeleteCategoryOutput struct {
	State       DeleteState
	PurgedItems int
	// CleanupFailures counts images that could not be removed after commit.
	CleanupFailures int
}
