package http

import (
	"errors"
	"net/http"

	"meeting-task-extractor/internal/extraction"
	pkgErrors "meeting-task-extractor/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "transcript is required")

// mapError translates extraction errors into HTTP errors. Upstream detail is never exposed.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "transcript is required")
	case errors.Is(err, extraction.ErrTranscriptTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "transcript is too long")
	case errors.Is(err, extraction.ErrExtractionFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "failed to extract tasks, please try again")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
