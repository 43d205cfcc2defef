package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/truthlens/truthlens-backend/internal/database"
	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrMissingReportField = errors.New("Type and content are required")
	ErrInvalidReportType  = errors.New("invalid report type")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidPriority    = errors.New("invalid priority")
)

const defaultReportPageSize = 20
const maxReportPageSize = 100

// reportTransitions is the designed lifecycle: Pending → Under Investigation
// → {Reviewed - Confirmed Fake | Closed - Authentic}.
var reportTransitions = map[string][]string{
	models.ReportStatusPending:       {models.ReportStatusInvestigating},
	models.ReportStatusInvestigating: {models.ReportStatusConfirmedFake, models.ReportStatusAuthentic},
}

// CanTransition reports whether a review may move a report from one status
// to another. Terminal statuses have no outgoing transitions.
func CanTransition(from, to string) bool {
	for _, next := range reportTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Submit creates a report with a sequence-backed identifier. nextval is
// atomic, so concurrent submissions cannot collide.
func (s *ReportService) Submit(req *dto.SubmitReportRequest) (*models.UserReport, error) {
	if req.Type == "" || req.Content == "" {
		return nil, ErrMissingReportField
	}
	if !models.ValidReportType(req.Type) {
		return nil, ErrInvalidReportType
	}

	var seq int64
	if err := s.db.Raw("SELECT nextval(?)", database.ReportSequence).Scan(&seq).Error; err != nil {
		return nil, fmt.Errorf("failed to allocate report id: %w", err)
	}

	report := models.UserReport{
		ID:       uuid.New(),
		ReportID: fmt.Sprintf("#UR-%d", seq),
		Type:     req.Type,
		Content:  req.Content,
		URL:      req.URL,
		Reporter: req.Reporter,
		Status:   models.ReportStatusPending,
		Priority: models.PriorityMedium,
		Action:   "Awaiting review",
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}
	return &report, nil
}

func (s *ReportService) List(limit int) ([]models.UserReport, error) {
	if limit <= 0 {
		limit = defaultReportPageSize
	}
	if limit > maxReportPageSize {
		limit = maxReportPageSize
	}

	var reports []models.UserReport
	err := s.db.Order("created_at DESC").Limit(limit).Find(&reports).Error
	return reports, err
}

// Review applies a status transition and optionally adjusts priority and
// action. Invalid transitions and unknown priorities are rejected before any
// write happens.
func (s *ReportService) Review(id uuid.UUID, req *dto.ReviewReportRequest) (*models.UserReport, error) {
	if !models.ValidReportStatus(req.Status) {
		return nil, ErrInvalidTransition
	}
	if req.Priority != "" && !models.ValidPriority(req.Priority) {
		return nil, ErrInvalidPriority
	}

	var report models.UserReport
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		return nil, ErrReportNotFound
	}

	if !CanTransition(report.Status, req.Status) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}
	if req.Action != "" {
		updates["action"] = req.Action
	}
	if err := s.db.Model(&report).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
