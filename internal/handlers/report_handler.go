package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
	"github.com/truthlens/truthlens-backend/internal/services"
)

type ReportService interface {
	Submit(req *dto.SubmitReportRequest) (*models.UserReport, error)
	List(limit int) ([]models.UserReport, error)
	Review(id uuid.UUID, req *dto.ReviewReportRequest) (*models.UserReport, error)
}

type ReportHandler struct {
	reports ReportService
}

func NewReportHandler(reports ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reports.Submit(&req)
	if err != nil {
		if errors.Is(err, services.ErrMissingReportField) || errors.Is(err, services.ErrInvalidReportType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, "submit_report", err)
	}

	return c.JSON(dto.ReportResponse{
		Message: "Report submitted successfully",
		Report:  *report,
	})
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	reports, err := h.reports.List(limit)
	if err != nil {
		return internalError(c, "list_reports", err)
	}
	if reports == nil {
		reports = []models.UserReport{}
	}

	return c.JSON(reports)
}

func (h *ReportHandler) Review(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ReviewReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reports.Review(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrInvalidPriority):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, "review_report", err)
	}

	return c.JSON(dto.ReportResponse{
		Message: "Report updated successfully",
		Report:  *report,
	})
}
