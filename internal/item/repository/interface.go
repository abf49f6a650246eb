package repository

import (
	"context"

	"hardware-inventory/internal/model"
)

// Repository is the composed interface for the item data store.
// Every method runs inside the transaction carried by ctx, if any.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns a zero Item (ID == "") when nothing matches.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, int, error)
	// UpdateItem returns a zero Item when the id does not resolve.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	// DeleteItem returns the deleted Item, or a zero Item when the id does not resolve.
	DeleteItem(ctx context.Context, id string) (model.Item, error)
	// DeleteItemsByCategory removes every item of the category and returns how many
	// were removed along with the image references they held.
	DeleteItemsByCategory(ctx context.Context, categoryID string) (int, []model.ImageRef, error)
	// ListImageRefs returns every image reference held by an item.
	ListImageRefs(ctx context.Context) ([]model.ImageRef, error)
}
