package db

import (
	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/pkg/logger"
)

// Migrate ensures the three tables exist. Idempotent; safe on every start.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.VerificationRecord{},
		&model.BusinessProfile{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
