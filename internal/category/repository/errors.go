package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrInvalidRecord  = errors.New("record violates category invariants")
	ErrUnknownField   = errors.New("unknown category field")
	// ErrHasItems is returned when a category is deleted while items still reference it.
	ErrHasItems = errors.New("category still owns items")
)
