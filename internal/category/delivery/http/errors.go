package http

import (
	"errors"
	"net/http"

	"finance-assistant/internal/category"
	pkgErrors "finance-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors return nil and are answered with 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, category.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, category.ErrInvalidInput.Error())
	case errors.Is(err, category.ErrClassifierUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, category.ErrClassifierUnavailable.Error())
	case errors.Is(err, category.ErrOutOfVocabulary):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, category.ErrOutOfVocabulary.Error())
	default:
		return nil
	}
}
