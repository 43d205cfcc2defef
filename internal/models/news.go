package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	NewsStatusVerified = "verified"
	NewsStatusFake     = "fake"
	NewsStatusPending  = "pending"
)

const (
	VerifiedByAI        = "AI"
	VerifiedByExpert    = "Expert"
	VerifiedByAIExpert  = "AI + Expert"
	VerifiedByCommunity = "Community"
	VerifiedByGovt      = "Govt Verified"
)

// Topics holds the declared topic enumeration. The last entry is the
// catch-all and is excluded from random topic picks.
var Topics = []string{"Politics", "Health", "Technology", "Entertainment", "Sports", "Other"}

// News is one verification record. Every verify call inserts a new row;
// there is no dedup by URL.
type News struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	URL        string         `gorm:"size:2048;not null" json:"url"`
	Headline   string         `gorm:"size:512;not null" json:"headline"`
	Content    string         `gorm:"type:text" json:"content"`
	Source     string         `gorm:"size:255" json:"source"`
	Status     string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Confidence int            `json:"confidence"`
	VerifiedBy string         `gorm:"size:20" json:"verifiedBy"`
	Indicators datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"indicators"`
	Topic      string         `gorm:"size:20;index" json:"topic"`
	ReportedBy string         `gorm:"size:120" json:"reportedBy,omitempty"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// NewsIndicators is the shape of the News.Indicators jsonb column.
type NewsIndicators struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

func ValidNewsStatus(s string) bool {
	return s == NewsStatusVerified || s == NewsStatusFake || s == NewsStatusPending
}

func ValidTopic(t string) bool {
	for _, v := range Topics {
		if v == t {
			return true
		}
	}
	return false
}
