package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"studiq-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware catches errors that escaped the controllers. The
// full error is logged server-side; the client only sees a generic message.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(500, "Internal server error"))
	}
}
