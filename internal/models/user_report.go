package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportStatusPending       = "Pending"
	ReportStatusInvestigating = "Under Investigation"
	ReportStatusConfirmedFake = "Reviewed - Confirmed Fake"
	ReportStatusAuthentic     = "Closed - Authentic"
)

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

var ReportTypes = []string{"Fake News", "Deepfake Video", "Misleading Image", "Suspicious Social Media Post", "Other"}

// UserReport is a community-submitted report. ReportID is the human-readable
// "#UR-<n>" identifier drawn from a database sequence, so it stays unique and
// strictly increasing under concurrent submissions.
type UserReport struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID  string    `gorm:"size:20;not null;uniqueIndex" json:"reportId"`
	Type      string    `gorm:"size:40;not null" json:"type"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	URL       string    `gorm:"size:2048" json:"url,omitempty"`
	Reporter  string    `gorm:"size:120" json:"reporter,omitempty"`
	Status    string    `gorm:"size:30;not null;default:'Pending';index" json:"status"`
	Priority  string    `gorm:"size:10;not null;default:'Medium'" json:"priority"`
	Action    string    `gorm:"size:255" json:"action,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidReportType(t string) bool {
	for _, v := range ReportTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusInvestigating, ReportStatusConfirmedFake, ReportStatusAuthentic:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
