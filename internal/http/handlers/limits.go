package handlers

import (
	"time"

	applog "dropsmob/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter allows limit requests per client IP within exp and answers the
// rest with a JSON 429.
func RateLimiter(limit int, exp time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: exp,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", map[string]any{"max": limit})
			return fail(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
		},
	})
}
