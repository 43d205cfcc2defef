package dto

import "github.com/truthlens/truthlens-backend/internal/models"

type SubmitReportRequest struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	URL      string `json:"url"`
	Reporter string `json:"reporter"`
}

type ReviewReportRequest struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Action   string `json:"action"`
}

type ReportResponse struct {
	Message string            `json:"message"`
	Report  models.UserReport `json:"report"`
}
