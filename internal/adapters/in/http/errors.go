package http

import (
	"errors"
	"net/http"

	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes returned in the uniform {code, message} body. The lost claim
// race gets its own code so clients can distinguish "someone else took it"
// from "illegal transition".
const (
	codeUnauthorized        = "unauthorized"
	codeForbidden           = "forbidden"
	codeNotFound            = "not_found"
	codeValidation          = "validation_failed"
	codeInvalidState        = "invalid_state"
	codeConflict            = "conflict"
	codeOtpMismatch         = "otp_mismatch"
	codeOtpAttemptsExceeded = "otp_attempts_exceeded"
	codeInternal            = "internal_error"
)

// writeError maps a domain error onto the HTTP taxonomy.
func writeError(ctx echo.Context, err error) error {
	status, code := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Store and infrastructure details stay out of responses.
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{Code: code, Message: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, order.ErrOtpAttemptsExceeded):
		return http.StatusTooManyRequests, codeOtpAttemptsExceeded
	case errors.Is(err, order.ErrOtpMismatch):
		return http.StatusBadRequest, codeOtpMismatch
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, codeUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, codeForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, codeValidation
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, codeInvalidState
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, codeConflict
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
