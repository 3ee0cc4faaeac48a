package http

import (
	"errors"
	"net/http"

	"meeting-task-extractor/internal/task"
	pkgErrors "meeting-task-extractor/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrEmptyDescription),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrNoItems),
		errors.Is(err, task.ErrMissingAssignee):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
