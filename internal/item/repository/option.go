package repository

import (
	"github.com/shopspring/decimal"

	"hardware-inventory/internal/model"
)

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	CategoryID    string
	Name          string
	Description   string
	Price         decimal.Decimal
	NumberInStock int
	Image         model.ImageRef
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
// Items are returned in insertion order.
type ListItemsOptions struct {
	CategoryID string
	Limit      int
	Offset     int
}

// UpdateItemOptions holds the full set of mutable fields for an Item.
type UpdateItemOptions struct {
	ID            string
	CategoryID    string
	Name          string
	Description   string
	Price         decimal.Decimal
	NumberInStock int
	Image         model.ImageRef
}
