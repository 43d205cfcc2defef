package services

import (
	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
	"gorm.io/gorm"
)

// DefaultAwarenessScore is reported when no users exist yet, so the
// dashboard never renders a null or NaN score.
const DefaultAwarenessScore = 87

const trendBuckets = 7

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

func (s *AnalyticsService) Dashboard() (*dto.DashboardStatsResponse, error) {
	stats := &dto.DashboardStatsResponse{}

	if err := s.db.Model(&models.News{}).Where("status = ?", models.NewsStatusVerified).Count(&stats.VerifiedNews).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.News{}).Where("status = ?", models.NewsStatusFake).Count(&stats.FakeNews).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Deepfake{}).Where("is_deepfake = ?", true).Count(&stats.Deepfakes).Error; err != nil {
		return nil, err
	}

	var avg *float64
	if err := s.db.Model(&models.User{}).Select("AVG(awareness_score)").Scan(&avg).Error; err != nil {
		return nil, err
	}
	stats.AwarenessScore = AverageOrDefault(avg)

	return stats, nil
}

// AverageOrDefault resolves the mean awareness score, substituting the
// documented fallback when the aggregate is NULL (no users).
func AverageOrDefault(avg *float64) float64 {
	if avg == nil {
		return DefaultAwarenessScore
	}
	return *avg
}

// Topics groups fake-status news by topic, descending by count.
func (s *AnalyticsService) Topics() ([]dto.TopicCount, error) {
	var topics []dto.TopicCount
	err := s.db.Model(&models.News{}).
		Select("topic, COUNT(*) AS count").
		Where("status = ?", models.NewsStatusFake).
		Group("topic").
		Order("count DESC").
		Scan(&topics).Error
	if topics == nil {
		topics = []dto.TopicCount{}
	}
	return topics, err
}

// Regions returns a fixed table. This is a known stub, not a computed
// aggregate; real geolocation data would replace it.
func (s *AnalyticsService) Regions() []dto.RegionStats {
	return []dto.RegionStats{
		{Region: "North America", Cases: 245, Percentage: 28},
		{Region: "Europe", Cases: 198, Percentage: 23},
		{Region: "Asia", Cases: 312, Percentage: 36},
		{Region: "South America", Cases: 67, Percentage: 8},
		{Region: "Africa", Cases: 43, Percentage: 5},
	}
}

// Trends groups news by creation date and status, limited to 7 buckets
// ascending by date.
func (s *AnalyticsService) Trends() ([]dto.TrendBucket, error) {
	var trends []dto.TrendBucket
	err := s.db.Model(&models.News{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS date, status, COUNT(*) AS count").
		Group("date, status").
		Order("date ASC").
		Limit(trendBuckets).
		Scan(&trends).Error
	if trends == nil {
		trends = []dto.TrendBucket{}
	}
	return trends, err
}
