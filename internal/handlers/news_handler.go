package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
	"github.com/truthlens/truthlens-backend/internal/services"
)

type NewsService interface {
	Verify(ctx context.Context, req *dto.VerifyNewsRequest) (*dto.VerifyNewsResponse, error)
	Recent() ([]models.News, error)
	Stats() (*dto.NewsStatsResponse, error)
}

type NewsHandler struct {
	news NewsService
}

func NewNewsHandler(news NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

func (h *NewsHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.news.Verify(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingURL) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, "verify_news", err)
	}

	return c.JSON(resp)
}

func (h *NewsHandler) Recent(c *fiber.Ctx) error {
	news, err := h.news.Recent()
	if err != nil {
		return internalError(c, "recent_news", err)
	}
	if news == nil {
		news = []models.News{}
	}
	return c.JSON(news)
}

func (h *NewsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.news.Stats()
	if err != nil {
		return internalError(c, "news_stats", err)
	}
	return c.JSON(stats)
}
