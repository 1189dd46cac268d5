package http

import (
	"errors"
	"net/http"

	"voice-task-management/internal/command"
	pkgErrors "voice-task-management/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, command.ErrEmptyTranscript),
		errors.Is(err, command.ErrMissingField),
		errors.Is(err, command.ErrUnknownIntent):
		return pkgErrors.WrapHTTPError(http.StatusBadRequest, err)
	case errors.Is(err, command.ErrTaskNotFound):
		return pkgErrors.WrapHTTPError(http.StatusNotFound, err)
	case errors.Is(err, command.ErrMalformedResponse),
		errors.Is(err, command.ErrResponseTruncated),
		errors.Is(err, command.ErrResponseBlocked),
		errors.Is(err, command.ErrUnexpectedFinish):
		return pkgErrors.WrapHTTPError(http.StatusUnprocessableEntity, err)
	case errors.Is(err, command.ErrModelUnavailable):
		return pkgErrors.WrapHTTPError(http.StatusBadGateway, err)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
