package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemNameMaxLen is the maximum item name length in characters.
const ItemNameMaxLen = 100

// Item is a hardware inventory record owned by exactly one Category.
type Item struct {
	ID            string
	CategoryID    string `validate:"required"`
	Name          string `validate:"required,max=100"`
	Description   string `validate:"required"`
	Price         decimal.Decimal
	NumberInStock int `validate:"gte=0"`
	Image         ImageRef
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// URL is the path the item is served at.
func (i Item) URL() string {
	return "/hardware/" + i.ID
}

// Validate checks the record invariants.
func (i Item) Validate() error {
	errs := FieldErrors{}
	if err := validateStruct(i); err != nil {
		fe, ok := err.(FieldErrors)
		if !ok {
			return err
		}
		errs = fe
	}
	if i.Price.IsNegative() {
		errs.Add("price", "must be greater than or equal to 0")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
