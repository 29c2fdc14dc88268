package repository

import (
	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/pkg/logger"
	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(profile *model.BusinessProfile) error
	FindAll() ([]model.BusinessProfile, error)
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(profile *model.BusinessProfile) error {
	logger.Debug("Creating business profile in database", map[string]interface{}{
		"user_id":      profile.UserID,
		"company_name": profile.CompanyName,
	})

	if err := r.db.Create(profile).Error; err != nil {
		logger.Error("Failed to create business profile in database", err, map[string]interface{}{
			"user_id":      profile.UserID,
			"company_name": profile.CompanyName,
		})
		return err
	}

	logger.Debug("Business profile created in database", map[string]interface{}{
		"business_id":  profile.ID,
		"company_name": profile.CompanyName,
	})
	return nil
}

func (r *businessRepository) FindAll() ([]model.BusinessProfile, error) {
	logger.Debug("Listing business profiles from database")

	var profiles []model.BusinessProfile
	if err := r.db.Order("id DESC").Find(&profiles).Error; err != nil {
		logger.Error("Failed to list business profiles from database", err)
		return nil, err
	}

	logger.Debug("Business profiles listed from database", map[string]interface{}{
		"count": len(profiles),
	})
	return profiles, nil
}
