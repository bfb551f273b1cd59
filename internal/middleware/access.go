// Package middleware holds Fiber middleware shared across handlers.
package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"atspass/internal/metrics"
	"atspass/internal/ratelimit"
	"atspass/internal/services"
)

// Locals keys set by the access controller for downstream handlers.
const (
	LocalPremium            = "premium"
	LocalRateLimitRemaining = "rate_limit_remaining"
)

// ClientAddress derives the limiter key for a request: first entry of the
// forwarded-for chain, then the real-IP header, then a shared "unknown"
// bucket for unattributable clients.
func ClientAddress(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}

// bearerToken extracts the bearer token from the Authorization header, or ""
// when the header is absent or not a bearer scheme.
func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// AccessControl gates a route behind the day-pass check and the per-address
// rate limiter. A verified, unexpired token grants access without touching
// the limiter; everything else, including any token verification failure,
// falls through to standard rate limiting.
func AccessControl(limiter *ratelimit.Limiter, dayPass services.DayPassService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if _, ok := dayPass.Verify(token); ok {
				c.Locals(LocalPremium, true)
				c.Locals(LocalRateLimitRemaining, -1)
				return c.Next()
			}
			logger.Debug("day pass verification failed, applying rate limit")
		}

		result := limiter.Allow(ClientAddress(c))
		if !result.Allowed {
			metrics.RecordRateLimited()
			retryAfter := int(result.RetryAfter.Seconds() + 0.999)
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			c.Set("X-RateLimit-Remaining", "0")
			c.Set("X-RateLimit-Reset", strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again in a moment.",
			})
		}

		c.Locals(LocalPremium, false)
		c.Locals(LocalRateLimitRemaining, result.Remaining)
		return c.Next()
	}
}
