package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	app.Use(RequestLogger(zaptest.NewLogger(t)))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestID").(string))
	})
	return app
}

func TestRequestLogger_AssignsID(t *testing.T) {
	resp, err := newTestApp(t).Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestLogger_KeepsClientID(t *testing.T) {
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")

	resp, err := newTestApp(t).Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}
