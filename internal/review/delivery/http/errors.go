package http

import (
	"errors"
	"net/http"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/review"
	pkgErrors "meeting-task-extractor/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errWrongIndex = pkgErrors.NewHTTPError(http.StatusBadRequest, "item index must be a number")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, review.ErrDraftNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, review.ErrIndexOutOfRange):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, review.ErrUnknownField),
		errors.Is(err, review.ErrEmptyWorkingSet),
		errors.Is(err, extraction.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, extraction.ErrTranscriptTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "transcript is too long")
	case errors.Is(err, extraction.ErrExtractionFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "failed to extract tasks, please try again")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
