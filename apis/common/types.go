package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized error response structure.
// It provides consistent error formatting across all API endpoints.
type ErrorResponse struct {
	// Error indicates whether this is an error response
	Error bool `json:"error"`

	// Message contains the error message description
	Message string `json:"message"`
}

// ErrorHandler renders handler errors as ErrorResponse, keeping the status
// code of *fiber.Error values.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(ErrorResponse{
		Error:   true,
		Message: err.Error(),
	})
}
