package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/frosty-coder/red-society/internal/metrics"
)

// Metrics records a counter and latency sample per request. The route
// pattern is used as the path label so query strings and params don't
// explode cardinality.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		path := c.Route().Path
		metrics.RequestsTotal.WithLabelValues(
			c.Method(), path, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		metrics.RequestDuration.WithLabelValues(c.Method(), path).
			Observe(time.Since(start).Seconds())
		return err
	}
}
