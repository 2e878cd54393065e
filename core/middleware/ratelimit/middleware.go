package ratelimit

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Options configures the middleware.
type Options struct {
	Store *Store
	// Stats is optional.
	Stats Stats
	// KeyHeader identifies the client when present, otherwise the client IP is used.
	KeyHeader string
	// RetryAfterSeconds is sent with rejected requests.
	RetryAfterSeconds int
	Logger            *zap.Logger
}

// New returns a Fiber middleware rejecting clients over their rate with 429.
func New(opts Options) fiber.Handler {
	if opts.RetryAfterSeconds <= 0 {
		opts.RetryAfterSeconds = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		key := clientKey(c, opts.KeyHeader)
		allowed := opts.Store.Allow(key)

		if opts.Stats != nil {
			if err := opts.Stats.Record(c.UserContext(), allowed); err != nil {
				opts.Logger.Warn("Failed to record rate limit stats", zap.Error(err))
			}
		}

		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(opts.RetryAfterSeconds))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many requests"})
		}
		return c.Next()
	}
}

// StatsHandler exposes the recorded totals.
func StatsHandler(stats Stats) fiber.Handler {
	return func(c *fiber.Ctx) error {
		totals, err := stats.Totals(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(totals)
	}
}

func clientKey(c *fiber.Ctx, header string) string {
	if header != "" {
		if v := strings.TrimSpace(c.Get(header)); v != "" {
			return v
		}
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
