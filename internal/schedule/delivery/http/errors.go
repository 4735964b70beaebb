package http

import (
	"errors"
	"net/http"

	"calendar-assistant/internal/schedule"
	"calendar-assistant/internal/validation"
	pkgErrors "calendar-assistant/pkg/errors"
	"calendar-assistant/pkg/gcalendar"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and are rendered as 500 with their text.
func (h *handler) mapError(err error) error {
	var verr *validation.Error
	var rejection *schedule.RejectionError

	switch {
	case errors.As(err, &verr):
		return pkgErrors.NewBadRequestError(verr.Error()).WithDetails(verr.Issues)
	case errors.As(err, &rejection):
		return pkgErrors.NewBadRequestError(rejection.Reason)
	case errors.Is(err, schedule.ErrInvalidRequest):
		return pkgErrors.NewBadRequestError(err.Error())
	case errors.Is(err, gcalendar.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return err
	}
}
