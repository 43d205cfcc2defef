package database

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/truthlens/truthlens-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedNews struct {
	url, headline, content, source, status, verifiedBy, topic string
	confidence                                                int
	positive, negative                                        []string
}

var sampleNews = []seedNews{
	{
		url: "https://bbc.com/news/climate-policy-2025", headline: "New Climate Policy Announced by International Summit",
		content: "Major nations agree on carbon reduction targets...", source: "BBC News",
		status: models.NewsStatusVerified, confidence: 98, verifiedBy: models.VerifiedByAIExpert, topic: "Politics",
		positive: []string{"Reputable source", "Multiple corroborations", "Official statements"},
	},
	{
		url: "https://fake-blog.net/miracle-cure", headline: "Miracle Cure for All Diseases Discovered by Local Doctor",
		content: "A revolutionary treatment that cures everything...", source: "Unknown Blog",
		status: models.NewsStatusFake, confidence: 94, verifiedBy: models.VerifiedByAI, topic: "Health",
		negative: []string{"Unverified source", "Sensational claims", "No scientific evidence"},
	},
	{
		url: "https://reuters.com/tech/ai-breakthrough", headline: "Major AI Breakthrough Announced by Tech Giant",
		content: "Revolutionary AI model outperforms previous benchmarks...", source: "Reuters",
		status: models.NewsStatusVerified, confidence: 97, verifiedBy: models.VerifiedByAIExpert, topic: "Technology",
		positive: []string{"Trusted source", "Technical documentation", "Peer reviewed"},
	},
	{
		url: "https://theguardian.com/sports/world-cup-final", headline: "World Cup Final: Historic Victory Celebrated Worldwide",
		content: "Millions celebrate as underdog team wins championship...", source: "The Guardian",
		status: models.NewsStatusVerified, confidence: 99, verifiedBy: models.VerifiedByGovt, topic: "Sports",
		positive: []string{"Live coverage", "Multiple sources", "Photo evidence"},
	},
	{
		url: "https://sketchy-news.info/celebrity-scandal", headline: "Celebrity Caught in Shocking Scandal - EXCLUSIVE!",
		content: "Anonymous sources claim shocking behavior...", source: "SketchyNews",
		status: models.NewsStatusFake, confidence: 91, verifiedBy: models.VerifiedByAI, topic: "Entertainment",
		negative: []string{"Anonymous sources", "Clickbait headline", "No credible evidence"},
	},
	{
		url: "https://viral-stories.biz/election-fraud", headline: "BREAKING: Massive Election Fraud Discovered!",
		content: "Shocking evidence reveals widespread corruption...", source: "Viral Stories",
		status: models.NewsStatusFake, confidence: 96, verifiedBy: models.VerifiedByAIExpert, topic: "Politics",
		negative: []string{"No credible sources", "Conspiracy theory", "Debunked by fact-checkers"},
	},
}

// Seed inserts demo records when the relevant tables are empty. It is gated
// by SEED_DEMO_DATA and intended for local development dashboards only.
func Seed(db *gorm.DB) error {
	var count int64
	db.Model(&models.News{}).Count(&count)
	if count > 0 {
		slog.Info("seed skipped, news table not empty", "rows", count)
		return nil
	}

	for _, n := range sampleNews {
		indicators, err := json.Marshal(models.NewsIndicators{
			Positive: orEmpty(n.positive),
			Negative: orEmpty(n.negative),
		})
		if err != nil {
			return err
		}
		record := models.News{
			URL:        n.url,
			Headline:   n.headline,
			Content:    n.content,
			Source:     n.source,
			Status:     n.status,
			Confidence: n.confidence,
			VerifiedBy: n.verifiedBy,
			Indicators: datatypes.JSON(indicators),
			Topic:      n.topic,
		}
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}

	deepfakes := []models.Deepfake{
		{
			VideoURL: "/uploads/sample-political-speech.mp4", FileName: "political-speech.mp4",
			Type: "Political Speech", Status: models.DeepfakeStatusConfirmed, Confidence: 96,
			IsDeepfake: true, ReportedBy: "AI Detection", Action: "Reported to authorities",
			Indicators: datatypes.JSON(`{"faceInconsistencies":12,"audioMismatch":18,"temporalAnomalies":14}`),
		},
		{
			VideoURL: "/uploads/sample-interview.mp4", FileName: "interview.mp4",
			Type: "Celebrity Video", Status: models.DeepfakeStatusAuthentic, Confidence: 93,
			IsDeepfake: false, ReportedBy: "AI Detection", Action: "No action needed",
			Indicators: datatypes.JSON(`{"faceInconsistencies":5,"audioMismatch":11,"temporalAnomalies":8}`),
		},
	}
	for i := range deepfakes {
		if err := db.Create(&deepfakes[i]).Error; err != nil {
			return err
		}
	}

	if err := seedDemoUser(db); err != nil {
		return err
	}
	if err := seedDemoReports(db); err != nil {
		return err
	}

	slog.Info("demo data seeded", "news", len(sampleNews), "deepfakes", len(deepfakes))
	return nil
}

func seedDemoUser(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("truthlens-demo"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	badges, err := json.Marshal([]models.Badge{
		{Name: "Truth Seeker", Icon: "🔍", Earned: true, EarnedDate: &now},
		{Name: "Media Aware", Icon: "📰", Earned: true, EarnedDate: &now},
	})
	if err != nil {
		return err
	}
	courses, err := json.Marshal([]models.CourseProgress{
		{Title: "Introduction to Digital Literacy", Progress: 100, CompletedDate: &now},
	})
	if err != nil {
		return err
	}

	user := models.User{
		Name:               "Arnav Singh",
		Email:              "arnav@truthlens.com",
		Password:           string(hash),
		Role:               "user",
		AwarenessScore:     87,
		Badges:             datatypes.JSON(badges),
		CoursesCompleted:   datatypes.JSON(courses),
		VerificationsCount: 25,
		ReportsSubmitted:   8,
	}
	return db.Create(&user).Error
}

func seedDemoReports(db *gorm.DB) error {
	reports := []models.UserReport{
		{
			ReportID: "#UR-1001", Type: "Fake News",
			Content: "Suspicious article about election fraud",
			URL:     "https://suspicious-site.com/election-fraud",
			Reporter: "User @truth_seeker", Status: models.ReportStatusInvestigating,
			Priority: models.PriorityHigh, Action: "Pending review",
		},
		{
			ReportID: "#UR-1002", Type: "Deepfake Video",
			Content: "Manipulated video of government official",
			URL:     "https://video-site.com/v/abc123",
			Reporter: "User @media_watch", Status: models.ReportStatusConfirmedFake,
			Priority: models.PriorityCritical, Action: "Reported to authorities",
		},
	}
	for i := range reports {
		if err := db.Create(&reports[i]).Error; err != nil {
			return err
		}
	}
	// Advance the sequence past the seeded ids so the next submission
	// does not collide with the report_id unique index.
	return db.Exec("SELECT setval(?, 1002)", ReportSequence).Error
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
