package model

import "time"

// CategoryNameMaxLen is the maximum category name length in characters.
const CategoryNameMaxLen = 40

// Category groups hardware items (a hardware type).
type Category struct {
	ID          string
	Name        string `validate:"required,max=40"`
	Description string `validate:"required"`
	Image       ImageRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// URL is the path the category is served at.
func (c Category) URL() string {
	return "/hardware_types/" + c.ID
}

// Validate checks the record invariants.
func (c Category) Validate() error {
	return validateStruct(c)
}

// CategoryField names a projectable category field.
type CategoryField string

const (
	CategoryFieldName        CategoryField = "name"
	CategoryFieldDescription CategoryField = "description"
	CategoryFieldImage       CategoryField = "image"
)

// CategoryFields lists every projectable field in display order.
var CategoryFields = []CategoryField{
	CategoryFieldName,
	CategoryFieldDescription,
	CategoryFieldImage,
}

// Valid reports whether f is a known field.
func (f CategoryField) Valid() bool {
	for _, known := range CategoryFields {
		if f == known {
			return true
		}
	}
	return false
}
