package http

import (
	"errors"

	"home-inventory/internal/item"
	pkgErrors "home-inventory/pkg/errors"
	"home-inventory/pkg/imagestore"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors collapse to 500 without leaking internal detail.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(404, "item not found")
	case errors.Is(err, item.ErrInvalidName):
		return pkgErrors.NewHTTPError(400, "item name is required")
	case errors.Is(err, item.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(400, "invalid payload")
	case errors.Is(err, imagestore.ErrFileTooLarge):
		return pkgErrors.NewHTTPError(400, "image file too large")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
