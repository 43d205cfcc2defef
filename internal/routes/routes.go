package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/truthlens/truthlens-backend/internal/config"
	"github.com/truthlens/truthlens-backend/internal/handlers"
	"github.com/truthlens/truthlens-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	reportHandler *handlers.ReportHandler,
	newsHandler *handlers.NewsHandler,
	deepfakeHandler *handlers.DeepfakeHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Identity: stricter rate limit on the credential endpoints
	users := api.Group("/users")
	authLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	users.Post("/signup", authLimit, authHandler.Signup)
	users.Post("/login", authLimit, authHandler.Login)
	users.Get("/profile/:id", authHandler.GetProfile)
	users.Put("/profile/:id", authHandler.UpdateProfile)
	users.Get("/badges/:userId", authHandler.GetBadges)

	// Community reports
	users.Post("/report", reportHandler.Submit)
	users.Get("/reports", reportHandler.List)
	users.Put("/reports/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(db), reportHandler.Review)

	// Verification
	news := api.Group("/news")
	news.Post("/verify", newsHandler.Verify)
	news.Get("/recent", newsHandler.Recent)
	news.Get("/stats", newsHandler.Stats)

	deepfake := api.Group("/deepfake")
	deepfake.Post("/analyze", deepfakeHandler.Analyze)
	deepfake.Get("/recent", deepfakeHandler.Recent)
	deepfake.Get("/timeline", deepfakeHandler.Timeline)

	// Analytics
	analytics := api.Group("/analytics")
	analytics.Get("/dashboard", analyticsHandler.Dashboard)
	analytics.Get("/topics", analyticsHandler.Topics)
	analytics.Get("/regions", analyticsHandler.Regions)
	analytics.Get("/trends", analyticsHandler.Trends)
}
