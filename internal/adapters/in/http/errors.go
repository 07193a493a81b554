package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates domain and application errors into HTTP status
// codes. Rule violations that could succeed after a state change map to
// 409, violations of the state machine itself map to 422.
func respondError(ctx echo.Context, err error) error {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrReturnWindowExpired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrRouteClosed),
		errors.Is(err, errs.ErrOrderAlreadyRouted),
		errors.Is(err, errs.ErrRouteNotEmpty),
		errors.Is(err, errs.ErrAlreadyRefunded),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrRefundFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badRequest returns a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
