package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/models"
)

// ValidationError returns a validation error with a safe message
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	message := "Invalid request data. Please check your input and try again."
	if de, ok := err.(*domain.DomainError); ok {
		message = de.Message
	}

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: message,
	})
}

// DatabaseError returns a generic database error without exposing internal details
func DatabaseError(c echo.Context, err error) error {
	log.Printf("[DATABASE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database_error",
		Message: "A database error occurred. Please try again later.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ForbiddenError returns a forbidden error
func ForbiddenError(c echo.Context, message string) error {
	if message == "" {
		message = "You do not have permission to access this resource."
	}
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: message,
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a conflict error. The message is safe to expose.
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}

// FromDomain maps a domain error to the matching HTTP response
func FromDomain(c echo.Context, err error) error {
	switch {
	case domain.IsNotFound(err):
		return NotFoundError(c)
	case domain.IsValidation(err), domain.IsInvalidTransition(err):
		return ValidationError(c, err)
	case domain.IsUnauthorized(err):
		return UnauthorizedError(c)
	case domain.IsForbidden(err), domain.IsFeatureDisabled(err):
		de, _ := err.(*domain.DomainError)
		msg := ""
		if de != nil {
			msg = de.Message
		}
		return ForbiddenError(c, msg)
	case domain.IsConflict(err):
		de, _ := err.(*domain.DomainError)
		msg := "The request conflicts with existing data."
		if de != nil {
			msg = de.Message
		}
		return ConflictError(c, msg)
	default:
		return InternalError(c, err)
	}
}
