package item

import (
	"github.com/shopspring/decimal"

	"hardware-inventory/internal/image"
	"hardware-inventory/internal/model"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	CategoryID    string
	Name          string
	Description   string
	Price         decimal.Decimal
	NumberInStock int
	// Image is an optional staged upload. The use case owns it from here on.
	Image *image.Upload
}

type ListByCategoryInput struct {
	CategoryID string
	Limit      int
	Offset     int
}

// UpdateItemInput carries a partial update. Empty strings and nil pointers keep the current value.
type UpdateItemInput struct {
	ID            string
	CategoryID    string
	Name          string
	Description   string
	Price         *decimal.Decimal
	NumberInStock *int
	Image         *image.Upload
	RemoveImage   bool
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.Item
}

type ListByCategoryOutput struct {
	Category model.Category
	Items    []model.Item
	Total    int
	Limit    int
	Offset   int
}

type DetailItemOutput struct {
	Item model.Item
}

type UpdateItemOutput struct {
	Item model.Item
}

type OptionsOutput struct {
	Categories []model.Category
}
