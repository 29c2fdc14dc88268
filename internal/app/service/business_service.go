package service

import (
	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/app/repository"
	"github.com/datanetra/msme-registry/pkg/logger"
)

type BusinessService interface {
	Create(userID uint, companyName, businessType string, years int, turnover float64, state, city string) (*model.BusinessProfile, error)
	List() ([]model.BusinessProfile, error)
}

type businessService struct {
	businessRepo repository.BusinessRepository
}

func NewBusinessService(businessRepo repository.BusinessRepository) BusinessService {
	return &businessService{businessRepo: businessRepo}
}

func (s *businessService) Create(userID uint, companyName, businessType string, years int, turnover float64, state, city string) (*model.BusinessProfile, error) {
	logger.Info("Creating business profile", map[string]interface{}{
		"user_id":      userID,
		"company_name": companyName,
	})

	profile := &model.BusinessProfile{
		UserID:           userID,
		CompanyName:      companyName,
		BusinessType:     businessType,
		YearsOfOperation: years,
		AnnualTurnover:   turnover,
		State:            state,
		City:             city,
	}

	if err := s.businessRepo.Create(profile); err != nil {
		return nil, err
	}

	logger.Info("Business profile created successfully", map[string]interface{}{
		"business_id":  profile.ID,
		"company_name": profile.CompanyName,
	})
	return profile, nil
}

func (s *businessService) List() ([]model.BusinessProfile, error) {
	return s.businessRepo.FindAll()
}
