package dto

import "github.com/truthlens/truthlens-backend/internal/models"

type AnalyzeVideoResponse struct {
	IsDeepfake     bool                      `json:"isDeepfake"`
	Confidence     int                       `json:"confidence"`
	Indicators     models.DeepfakeIndicators `json:"indicators"`
	Recommendation string                    `json:"recommendation"`
}

// TimelineBucket is one grouped-by-month count of deepfake records.
type TimelineBucket struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}
