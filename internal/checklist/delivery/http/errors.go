package http

import (
	"net/http"

	"remodel-checklist/internal/checklist"
	pkgErrors "remodel-checklist/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case checklist.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case checklist.ErrTemplateNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "template not found")
	case checklist.ErrCalendarUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar integration not configured")
	case checklist.ErrInvalidFollowUpRange:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "follow-up end time must be after start time")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
