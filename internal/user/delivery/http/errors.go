package http

import (
	"errors"
	"net/http"

	"meeting-task-extractor/internal/user"
	pkgErrors "meeting-task-extractor/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidUsername),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, user.ErrInvalidTimezone):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrUsernameTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
