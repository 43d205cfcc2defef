package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name               string         `gorm:"size:120;not null" json:"name"`
	Email              string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password           string         `gorm:"not null" json:"-"`
	Role               string         `gorm:"size:20;default:'user'" json:"role"`
	AwarenessScore     int            `gorm:"default:0" json:"awarenessScore"`
	Badges             datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"badges"`
	CoursesCompleted   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"coursesCompleted"`
	VerificationsCount int            `gorm:"default:0" json:"verificationsCount"`
	ReportsSubmitted   int            `gorm:"default:0" json:"reportsSubmitted"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// Badge is the shape of the entries stored in the Badges jsonb column.
type Badge struct {
	Name       string     `json:"name"`
	Icon       string     `json:"icon"`
	Earned     bool       `json:"earned"`
	EarnedDate *time.Time `json:"earnedDate,omitempty"`
}

type CourseProgress struct {
	Title         string     `json:"title"`
	Progress      int        `json:"progress"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}
