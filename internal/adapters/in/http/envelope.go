package http

import (
	"errors"
	"net/http"

	"arkdumpster/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the JSON shape of every response: `{"success": true, "data":
// ...}` on the happy path, `{"success": false, "error": "..."}` otherwise.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respond writes a success envelope.
func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

// respondError maps a core error to its status code and writes a failure
// envelope. The mapping follows the error taxonomy: malformed input 400,
// unknown resource 404, asset conflict 409, rejected workflow move 422,
// collaborator failure 502, everything else 500.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), envelope{Success: false, Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrDependencyFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
