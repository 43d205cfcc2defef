package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/truthlens/truthlens-backend/internal/dto"
)

// internalError logs the failure with its detail server-side and returns a
// generic 500 to the caller.
func internalError(c *fiber.Ctx, action string, err error) error {
	slog.Error("request failed",
		"action", action,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", requestID(c),
		"error", err.Error(),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
