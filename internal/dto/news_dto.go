package dto

import "github.com/truthlens/truthlens-backend/internal/models"

type VerifyNewsRequest struct {
	URL      string `json:"url"`
	Headline string `json:"headline"`
	Content  string `json:"content"`
}

// SourceInfo is the metadata attached when the source-reputation lookup hits.
type SourceInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Language string `json:"language"`
	Country  string `json:"country"`
}

type VerifyNewsResponse struct {
	Status     string                 `json:"status"`
	Confidence int                    `json:"confidence"`
	Message    string                 `json:"message"`
	Indicators models.NewsIndicators  `json:"indicators"`
	SourceInfo *SourceInfo            `json:"sourceInfo,omitempty"`
	AIAnalysis string                 `json:"aiAnalysis,omitempty"`
}

type NewsStatsResponse struct {
	Verified int64 `json:"verified"`
	Fake     int64 `json:"fake"`
	Pending  int64 `json:"pending"`
}
