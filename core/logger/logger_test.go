package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		debug  bool
		warnOn bool
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}, true, true},
		{"InfoJSON", Config{Level: "info", Format: "json"}, false, true},
		{"WarnJSON", Config{Level: "warn", Format: "json"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warnOn, l.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc-123")
		WithRayID(base, c).Info("hello")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()["ray_id"])
}

func TestWithStudent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	WithStudent(zap.New(core), 7, "tourist").Info("sync")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, uint64(7), fields["student_id"])
	assert.Equal(t, "tourist", fields["handle"])
}
