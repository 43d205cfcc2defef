package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
)

const maxVideoSize = 100 * 1024 * 1024

type DeepfakeService interface {
	Analyze(ctx context.Context, videoURL, fileName string) (*dto.AnalyzeVideoResponse, error)
	Recent() ([]models.Deepfake, error)
	Timeline() ([]dto.TimelineBucket, error)
}

type DeepfakeHandler struct {
	deepfakes DeepfakeService
	uploadDir string
}

func NewDeepfakeHandler(deepfakes DeepfakeService, uploadDir string) *DeepfakeHandler {
	return &DeepfakeHandler{deepfakes: deepfakes, uploadDir: uploadDir}
}

// Analyze handles POST /analyze with a multipart "video" field. The file is
// written before analysis runs; a failed analysis does not remove it.
func (h *DeepfakeHandler) Analyze(c *fiber.Ctx) error {
	file, err := c.FormFile("video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Video file is required",
		})
	}

	if msg := validateVideo(file); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: msg,
		})
	}

	// Upload names are keyed by timestamp plus the original filename.
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	savePath := filepath.Join(h.uploadDir, filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return internalError(c, "save_video", err)
	}

	videoURL := "/uploads/" + filename
	resp, err := h.deepfakes.Analyze(c.Context(), videoURL, file.Filename)
	if err != nil {
		return internalError(c, "analyze_video", err)
	}

	return c.JSON(resp)
}

// validateVideo rejects oversized uploads and non-video content types. An
// empty result means the file is acceptable.
func validateVideo(file *multipart.FileHeader) string {
	if file.Size > maxVideoSize {
		return "Video size must be less than 100MB"
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "video/") {
		return "Only video uploads are accepted"
	}
	return ""
}

func (h *DeepfakeHandler) Recent(c *fiber.Ctx) error {
	reports, err := h.deepfakes.Recent()
	if err != nil {
		return internalError(c, "recent_deepfakes", err)
	}
	if reports == nil {
		reports = []models.Deepfake{}
	}
	return c.JSON(reports)
}

func (h *DeepfakeHandler) Timeline(c *fiber.Ctx) error {
	timeline, err := h.deepfakes.Timeline()
	if err != nil {
		return internalError(c, "deepfake_timeline", err)
	}
	return c.JSON(timeline)
}
