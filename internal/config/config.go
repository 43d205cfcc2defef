package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development fallback signing key. Startup logs a
// warning whenever it is in use; it must never ship to production.
const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session tokens
	JWTSecret   string
	TokenExpiry time.Duration

	// News metadata lookup (newsapi.org)
	NewsAPIKey string
	NewsAPIURL string

	// Language-model classification
	OpenAIAPIKey string
	OpenAIModel  string
	AITimeout    time.Duration

	// Video uploads
	UploadDir string

	// Server
	Port        string
	CORSOrigins string

	// Demo data
	SeedDemoData bool
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "truthlens"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenExpiry: parseDuration(getEnv("TOKEN_EXPIRY", "168h"), 168*time.Hour),

		NewsAPIKey: getEnv("NEWS_API_KEY", ""),
		NewsAPIURL: getEnv("NEWS_API_URL", "https://newsapi.org/v2"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		AITimeout:    parseDuration(getEnv("AI_TIMEOUT", "30s"), 30*time.Second),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SeedDemoData: getEnv("SEED_DEMO_DATA", "") == "true",
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
