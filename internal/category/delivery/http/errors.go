package http

import (
	"errors"

	"hardware-inventory/internal/category"
	"hardware-inventory/internal/model"
	pkgErrors "hardware-inventory/pkg/errors"
)

const validationMessage = "validation failed"

var (
	errNotFound      = pkgErrors.NewHTTPError(404, "hardware type not found")
	errDeleteAborted = pkgErrors.NewHTTPError(500, "delete aborted, nothing was removed")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// submitted is echoed back with validation failures.
func (h *handler) mapError(err error, submitted any) error {
	if fe, ok := model.AsFieldErrors(err); ok {
		return pkgErrors.NewValidationError(validationMessage, fe, submitted)
	}

	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return errNotFound
	case errors.Is(err, category.ErrUnknownField):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, category.ErrDeleteAborted):
		return errDeleteAborted
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// bindError turns a binding failure into a 422 when it is a rule violation, otherwise a 400.
func (h *handler) bindError(err error, submitted any) error {
	if pkgErrors.IsRequestTooLarge(err) {
		return pkgErrors.ErrRequestTooLarge
	}
	if fe, ok := model.AsFieldErrors(err); ok {
		return pkgErrors.NewValidationError(validationMessage, fe, submitted)
	}
	return pkgErrors.NewHTTPError(400, err.Error())
}
