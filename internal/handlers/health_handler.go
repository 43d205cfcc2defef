package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/truthlens/truthlens-backend/internal/database"
	"github.com/truthlens/truthlens-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:  "OK",
		Message: "TruthLens API is running",
		DB:      dbStatus,
	})
}
