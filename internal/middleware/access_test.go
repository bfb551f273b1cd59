package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureClientAddress(t *testing.T, headers map[string]string) string {
	t.Helper()

	var got string
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ClientAddress(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	_, err := app.Test(req)
	require.NoError(t, err)
	return got
}

func TestClientAddressPrefersForwardedFor(t *testing.T) {
	got := captureClientAddress(t, map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1, 10.0.0.2",
		"X-Real-IP":       "198.51.100.9",
	})
	assert.Equal(t, "203.0.113.7", got)
}

func TestClientAddressFallsBackToRealIP(t *testing.T) {
	got := captureClientAddress(t, map[string]string{
		"X-Real-IP": "198.51.100.9",
	})
	assert.Equal(t, "198.51.100.9", got)
}

func TestClientAddressUnknownBucket(t *testing.T) {
	got := captureClientAddress(t, nil)
	assert.Equal(t, "unknown", got)
}
