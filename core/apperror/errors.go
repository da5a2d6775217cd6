package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("requested resource not found")
	ErrForbidden          = errors.New("forbidden access")
	ErrConflict           = errors.New("resource conflict")
	ErrServiceUnavailable = errors.New("service unavailable") // judge data unknown
)

// Status maps domain errors to HTTP status codes.
func Status(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusConflict
	case errors.Is(err, ErrServiceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes err as the standard {"error": ...} body with its mapped status.
func Respond(c *fiber.Ctx, err error) error {
	return c.Status(Status(err)).JSON(fiber.Map{"error": err.Error()})
}
