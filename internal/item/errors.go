package item

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("no such category")
	// ErrNoCategories is returned when an item cannot be created because no category exists yet.
	ErrNoCategories = errors.New("create a hardware type first")
)
