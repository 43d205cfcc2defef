package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DeepfakeStatusConfirmed   = "Confirmed Deepfake"
	DeepfakeStatusAuthentic   = "Authentic"
	DeepfakeStatusUnderReview = "Under Review"
)

var DeepfakeTypes = []string{"Political Speech", "Celebrity Video", "News Anchor", "Corporate CEO", "Other"}

// Deepfake is one video analysis record.
type Deepfake struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VideoURL   string         `gorm:"size:2048" json:"videoUrl"`
	FileName   string         `gorm:"size:512" json:"fileName"`
	Type       string         `gorm:"size:30" json:"type"`
	Status     string         `gorm:"size:30;not null;default:'Under Review'" json:"status"`
	Confidence int            `json:"confidence"`
	Indicators datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"indicators"`
	IsDeepfake bool           `gorm:"index" json:"isDeepfake"`
	ReportedBy string         `gorm:"size:120" json:"reportedBy"`
	Action     string         `gorm:"size:255" json:"action"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// DeepfakeIndicators is the shape of the Deepfake.Indicators jsonb column.
type DeepfakeIndicators struct {
	FaceInconsistencies int `json:"faceInconsistencies"`
	AudioMismatch       int `json:"audioMismatch"`
	TemporalAnomalies   int `json:"temporalAnomalies"`
}

func ValidDeepfakeStatus(s string) bool {
	return s == DeepfakeStatusConfirmed || s == DeepfakeStatusAuthentic || s == DeepfakeStatusUnderReview
}

func ValidDeepfakeType(t string) bool {
	for _, v := range DeepfakeTypes {
		if v == t {
			return true
		}
	}
	return false
}
