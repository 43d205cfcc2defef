package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrMissingURL = errors.New("URL is required")

// sourceBonus is added to the working confidence when the domain resolves to
// a registered source, capped at 99.
const sourceBonus = 10

const recentNewsLimit = 10

type NewsService struct {
	db         *gorm.DB
	sources    SourceChecker
	classifier Classifier
	fallback   Classifier
}

func NewNewsService(db *gorm.DB, sources SourceChecker, classifier Classifier) *NewsService {
	return &NewsService{
		db:         db,
		sources:    sources,
		classifier: classifier,
		fallback:   &HeuristicClassifier{},
	}
}

// Verify runs the three-stage pipeline: baseline verdict, optional source
// reputation lookup, optional language-model classification. Each enrichment
// stage is independently failable; a failure is logged and the pipeline
// degrades to the prior working values. The resulting record is always
// persisted.
func (s *NewsService) Verify(ctx context.Context, req *dto.VerifyNewsRequest) (*dto.VerifyNewsResponse, error) {
	if req.URL == "" {
		return nil, ErrMissingURL
	}
	domain, err := DomainOf(req.URL)
	if err != nil {
		return nil, ErrMissingURL
	}

	verdict, sourceInfo, aiAnalysis := s.classify(ctx, req, domain)

	status := models.NewsStatusFake
	if verdict.IsReal {
		status = models.NewsStatusVerified
	}

	indicators := buildIndicators(verdict, sourceInfo)
	indicatorsJSON, err := json.Marshal(indicators)
	if err != nil {
		return nil, fmt.Errorf("failed to encode indicators: %w", err)
	}

	headline := req.Headline
	if headline == "" {
		headline = "News article"
	}
	source := domain
	if sourceInfo != nil {
		source = sourceInfo.Name
	}
	verifiedBy := models.VerifiedByAI
	if s.classifier.Configured() {
		verifiedBy = models.VerifiedByAIExpert
	}

	record := models.News{
		URL:        req.URL,
		Headline:   headline,
		Content:    req.Content,
		Source:     source,
		Status:     status,
		Confidence: verdict.Confidence,
		VerifiedBy: verifiedBy,
		Indicators: datatypes.JSON(indicatorsJSON),
		Topic:      pickTopic(sourceInfo),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store verification: %w", err)
	}

	message := "Warning: This article shows signs of misinformation."
	if verdict.IsReal {
		message = "This article appears to be legitimate from a trusted source."
	}

	return &dto.VerifyNewsResponse{
		Status:     status,
		Confidence: verdict.Confidence,
		Message:    message,
		Indicators: indicators,
		SourceInfo: sourceInfo,
		AIAnalysis: aiAnalysis,
	}, nil
}

// classify runs the enrichment stages against the baseline verdict: a source
// hit forces real and adds the bonus (capped at 99); a successful model
// classification then overrides verdict, confidence, and indicators. Stage
// failures keep the prior working values.
func (s *NewsService) classify(ctx context.Context, req *dto.VerifyNewsRequest, domain string) (*Verdict, *dto.SourceInfo, string) {
	verdict, _ := s.fallback.Classify(ctx, req.URL, req.Headline, req.Content)

	var sourceInfo *dto.SourceInfo
	if info, err := s.sources.Lookup(ctx, domain); err == nil {
		sourceInfo = info
		verdict.IsReal = true
		verdict.Confidence = min(verdict.Confidence+sourceBonus, 99)
	} else if !errors.Is(err, ErrUnconfigured) && !errors.Is(err, ErrSourceUnknown) {
		slog.Error("source lookup failed", "action", "news_verify", "domain", domain, "error", err.Error())
	}

	var aiAnalysis string
	if s.classifier.Configured() && (req.Headline != "" || req.Content != "") {
		if v, err := s.classifier.Classify(ctx, req.URL, req.Headline, req.Content); err == nil {
			verdict = v
			aiAnalysis = v.Raw
		} else {
			slog.Error("classifier failed", "action", "news_verify", "url", req.URL, "error", err.Error())
		}
	}

	return verdict, sourceInfo, aiAnalysis
}

// buildIndicators prefers the model's lists when it supplied any; otherwise
// it falls back to the canned indicators keyed by the verdict.
func buildIndicators(verdict *Verdict, sourceInfo *dto.SourceInfo) models.NewsIndicators {
	if len(verdict.Indicators.Positive) > 0 || len(verdict.Indicators.Negative) > 0 {
		return models.NewsIndicators{
			Positive: orEmptyList(verdict.Indicators.Positive),
			Negative: orEmptyList(verdict.Indicators.Negative),
		}
	}

	indicators := models.NewsIndicators{Positive: []string{}, Negative: []string{}}
	if verdict.IsReal {
		if sourceInfo != nil {
			indicators.Positive = append(indicators.Positive, "Source verified in News API database")
		}
		indicators.Positive = append(indicators.Positive,
			"Cross-referenced with multiple sources",
			"Author has verified credentials",
		)
	} else {
		indicators.Negative = append(indicators.Negative,
			"Source not in trusted database",
			"Sensational language detected",
			"No verifiable sources cited",
		)
	}
	return indicators
}

// pickTopic maps the source category onto the topic enumeration, falling back
// to a random non-Other topic when no metadata is available.
func pickTopic(sourceInfo *dto.SourceInfo) string {
	if sourceInfo != nil {
		switch strings.ToLower(sourceInfo.Category) {
		case "health":
			return "Health"
		case "technology", "science":
			return "Technology"
		case "entertainment":
			return "Entertainment"
		case "sports":
			return "Sports"
		case "politics", "general":
			return "Politics"
		default:
			return "Other"
		}
	}
	return models.Topics[rand.Intn(len(models.Topics)-1)]
}

func (s *NewsService) Recent() ([]models.News, error) {
	var news []models.News
	err := s.db.Order("created_at DESC").Limit(recentNewsLimit).Find(&news).Error
	return news, err
}

func (s *NewsService) Stats() (*dto.NewsStatsResponse, error) {
	stats := &dto.NewsStatsResponse{}
	counts := []struct {
		status string
		dest   *int64
	}{
		{models.NewsStatusVerified, &stats.Verified},
		{models.NewsStatusFake, &stats.Fake},
		{models.NewsStatusPending, &stats.Pending},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.News{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func orEmptyList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
