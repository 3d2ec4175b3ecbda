package serverutils

import (
	"time"

	"chat-relay-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger tags every request with a correlation id and logs method,
// path, status and duration once the handler chain finishes.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := uuid.NewString()
		ctx.Locals("request_id", requestId)
		ctx.Set("X-Request-Id", requestId)

		start := time.Now()
		err := ctx.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"request_id":  requestId,
			"method":      ctx.Method(),
			"path":        ctx.Path(),
			"status":      ctx.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		})

		return err
	}
}
