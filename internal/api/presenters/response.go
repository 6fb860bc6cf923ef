package presenters

import (
	"errors"

	"foodgram/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	if statusCode == fiber.StatusNoContent {
		return c.SendStatus(statusCode)
	}

	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse renders err in the error envelope. Field errors keep their
// per-field messages; conflicts are reported as non-field errors.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	return c.Status(statusCode).JSON(Response{
		Status:  false,
		Message: message,
		Errors:  errorBody(err),
	})
}

func errorBody(err error) any {
	if err == nil {
		return nil
	}

	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	if errors.Is(err, domain.ErrConflict) {
		return domain.NewFieldError(domain.NonFieldErrors, err.Error())
	}
	return err.Error()
}

// StatusCode maps a domain error to the HTTP status it is reported with.
func StatusCode(err error) int {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs), errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenRevoked),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// DomainErrorResponse renders err with the status derived from its class.
// Unclassified errors are hidden behind a generic message.
func DomainErrorResponse(c *fiber.Ctx, message string, err error) error {
	status := StatusCode(err)
	if status == fiber.StatusInternalServerError {
		return ErrorResponse(c, status, message, errors.New(domain.MessageFailedProcessRequest))
	}
	return ErrorResponse(c, status, message, err)
}
