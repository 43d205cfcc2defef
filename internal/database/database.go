package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/truthlens/truthlens-backend/internal/config"
	"github.com/truthlens/truthlens-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ReportSequence backs the human-readable "#UR-<n>" report identifiers.
// It starts at 1001 so the first report is #UR-1001.
const ReportSequence = "user_report_seq"

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models and creates the report-id sequence.
func Migrate() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.Deepfake{},
		&models.UserReport{},
		&models.SystemLog{},
	); err != nil {
		return err
	}
	return DB.Exec("CREATE SEQUENCE IF NOT EXISTS " + ReportSequence + " START WITH 1001").Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
