package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a fresh id, echoes it in the response
// header, and logs the request with its latency.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)

		start := time.Now()
		err := c.Next()
		log.Printf("[API] %s %s %s %d %s",
			id, c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
