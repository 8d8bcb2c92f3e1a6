package http

import (
	"errors"
	"net/http"

	"jarvis-assistant/internal/assistant"
	pkgErrors "jarvis-assistant/pkg/errors"
)

var errNoCommand = pkgErrors.NewHTTPError(http.StatusBadRequest, "No command provided")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyCommand):
		return errNoCommand
	default:
		return pkgErrors.ErrInternalServerError
	}
}
