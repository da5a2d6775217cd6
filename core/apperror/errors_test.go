package apperror

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Nil", nil, fiber.StatusOK},
		{"Validation", fmt.Errorf("handle required: %w", ErrValidation), fiber.StatusBadRequest},
		{"NotFound", fmt.Errorf("contest 3: %w", ErrNotFound), fiber.StatusNotFound},
		{"GormNotFound", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"Forbidden", ErrForbidden, fiber.StatusForbidden},
		{"Conflict", ErrConflict, fiber.StatusConflict},
		{"Duplicate", gorm.ErrDuplicatedKey, fiber.StatusConflict},
		{"Unavailable", fmt.Errorf("submissions: %w", ErrServiceUnavailable), fiber.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Respond(c, fmt.Errorf("handle required: %w", ErrValidation))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"handle required: validation failed"}`, string(body))
}
