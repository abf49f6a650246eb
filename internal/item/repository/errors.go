package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrInvalidRecord  = errors.New("record violates item invariants")
	// ErrCategoryMissing is returned when the owning category does not exist at write time.
	ErrCategoryMissing = errors.New("owning category does not exist")
)
