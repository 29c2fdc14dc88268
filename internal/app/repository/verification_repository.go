package repository

import (
	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/pkg/logger"
	"gorm.io/gorm"
)

type VerificationRepository interface {
	Create(record *model.VerificationRecord) error
	FindAll() ([]model.VerificationRecord, error)
	FindByID(id uint) (*model.VerificationRecord, error)
	FindByUdyamNumber(udyam string) (*model.VerificationRecord, error)
	AllCertificatePaths() ([]string, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(record *model.VerificationRecord) error {
	logger.Debug("Creating verification record in database", map[string]interface{}{
		"user_id":      record.UserID,
		"udyam_number": record.UdyamNumber,
	})

	if err := r.db.Create(record).Error; err != nil {
		logger.Error("Failed to create verification record in database", err, map[string]interface{}{
			"user_id":      record.UserID,
			"udyam_number": record.UdyamNumber,
		})
		return err
	}

	logger.Debug("Verification record created in database", map[string]interface{}{
		"verification_id": record.ID,
		"udyam_number":    record.UdyamNumber,
	})
	return nil
}

func (r *verificationRepository) FindAll() ([]model.VerificationRecord, error) {
	logger.Debug("Listing verification records from database")

	var records []model.VerificationRecord
	if err := r.db.Order("id DESC").Find(&records).Error; err != nil {
		logger.Error("Failed to list verification records from database", err)
		return nil, err
	}

	logger.Debug("Verification records listed from database", map[string]interface{}{
		"count": len(records),
	})
	return records, nil
}

func (r *verificationRepository) FindByID(id uint) (*model.VerificationRecord, error) {
	logger.Debug("Finding verification record by ID in database", map[string]interface{}{
		"verification_id": id,
	})

	var record model.VerificationRecord
	if err := r.db.First(&record, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find verification record by ID in database", err, map[string]interface{}{
				"verification_id": id,
			})
		}
		return nil, err
	}

	return &record, nil
}

func (r *verificationRepository) FindByUdyamNumber(udyam string) (*model.VerificationRecord, error) {
	logger.Debug("Finding verification record by Udyam number in database", map[string]interface{}{
		"udyam_number": udyam,
	})

	var record model.VerificationRecord
	if err := r.db.Where("udyam_number = ?", udyam).First(&record).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find verification record by Udyam number in database", err, map[string]interface{}{
				"udyam_number": udyam,
			})
		}
		return nil, err
	}

	return &record, nil
}

// AllCertificatePaths returns the stored path of every record. The orphan
// sweeper uses this to decide which upload files are still referenced.
func (r *verificationRepository) AllCertificatePaths() ([]string, error) {
	var paths []string
	err := r.db.Model(&model.VerificationRecord{}).
		Where("certificate_path <> ''").
		Pluck("certificate_path", &paths).Error
	if err != nil {
		logger.Error("Failed to collect certificate paths from database", err)
		return nil, err
	}
	return paths, nil
}
