package http

import (
	"errors"

	"hardware-inventory/internal/item"
	"hardware-inventory/internal/model"
	pkgErrors "hardware-inventory/pkg/errors"
)

const validationMessage = "validation failed"

var (
	errItemNotFound     = pkgErrors.NewHTTPError(404, "hardware not found")
	errCategoryNotFound = pkgErrors.NewHTTPError(404, "hardware type not found")
	errNoCategories     = pkgErrors.NewHTTPError(409, item.ErrNoCategories.Error())
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error, submitted any) error {
	if fe, ok := model.AsFieldErrors(err); ok {
		return pkgErrors.NewValidationError(validationMessage, fe, submitted)
	}

	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, item.ErrCategoryNotFound):
		return errCategoryNotFound
	case errors.Is(err, item.ErrNoCategories):
		return errNoCategories
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func (h *handler) bindError(err error, submitted any) error {
	if pkgErrors.IsRequestTooLarge(err) {
		return pkgErrors.ErrRequestTooLarge
	}
	if fe, ok := model.AsFieldErrors(err); ok {
		return pkgErrors.NewValidationError(validationMessage, fe, submitted)
	}
	return pkgErrors.NewHTTPError(400, err.Error())
}
