package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("hardware type not found")
	// ErrDeleteAborted is returned when a cascade delete rolled back. No record and no image was removed.
	ErrDeleteAborted = errors.New("delete aborted")
	ErrUnknownField  = errors.New("unknown field")
)
