package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).SendString("bad")
	})

	t.Run(`success logs at info`, func(t *testing.T) {
		hook.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, log.InfoLevel, entry.Level)
		require.Equal(t, "/ok", entry.Data["path"])
		require.Equal(t, fiber.StatusOK, entry.Data["status"])
	})

	t.Run(`client error logs at warn`, func(t *testing.T) {
		hook.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, log.WarnLevel, entry.Level)
	})
}
