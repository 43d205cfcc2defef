package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/truthlens/truthlens-backend/internal/dto"
)

type AnalyticsService interface {
	Dashboard() (*dto.DashboardStatsResponse, error)
	Topics() ([]dto.TopicCount, error)
	Regions() []dto.RegionStats
	Trends() ([]dto.TrendBucket, error)
}

type AnalyticsHandler struct {
	analytics AnalyticsService
}

func NewAnalyticsHandler(analytics AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.analytics.Dashboard()
	if err != nil {
		return internalError(c, "dashboard_stats", err)
	}
	return c.JSON(stats)
}

func (h *AnalyticsHandler) Topics(c *fiber.Ctx) error {
	topics, err := h.analytics.Topics()
	if err != nil {
		return internalError(c, "topic_breakdown", err)
	}
	return c.JSON(topics)
}

func (h *AnalyticsHandler) Regions(c *fiber.Ctx) error {
	return c.JSON(h.analytics.Regions())
}

func (h *AnalyticsHandler) Trends(c *fiber.Ctx) error {
	trends, err := h.analytics.Trends()
	if err != nil {
		return internalError(c, "weekly_trends", err)
	}
	return c.JSON(trends)
}
