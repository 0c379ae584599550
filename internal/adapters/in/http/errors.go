package http

import (
	"errors"
	"net/http"

	"burger/internal/adapters/out/catalogcache"
	"burger/internal/core/application/store"
	"burger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrSubmissionInProgress):
		return http.StatusConflict
	case errors.Is(err, store.ErrBaseIsRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, catalogcache.ErrCacheIsNotLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an Error body. Internal failures are reported
// with the fallback message so driver details do not leak to clients.
func respondError(ctx echo.Context, err error, fallback string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = fallback
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// badRequest reports a request that could not be turned into a command or query.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
}
