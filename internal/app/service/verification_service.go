package service

import (
	"errors"
	"io"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/app/repository"
	"github.com/datanetra/msme-registry/internal/storage"
	"github.com/datanetra/msme-registry/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrUdyamAlreadyExists  = errors.New("udyam number already exists")
	ErrRecordNotFound      = errors.New("verification record not found")
	ErrCertificateNotFound = errors.New("certificate file not found")
)

type VerificationService interface {
	Submit(userID uint, udyam, status, fileName string, file io.Reader) (*model.VerificationRecord, error)
	List() ([]model.VerificationRecord, error)
	CertificatePath(id uint) (string, error)
}

type verificationService struct {
	verificationRepo repository.VerificationRepository
	store            *storage.LocalStorage
}

func NewVerificationService(verificationRepo repository.VerificationRepository, store *storage.LocalStorage) VerificationService {
	return &verificationService{
		verificationRepo: verificationRepo,
		store:            store,
	}
}

// Submit saves the certificate file, then inserts the record. The two effects
// are not transactional: if the insert fails after the file write, the
// orphaned file is logged and left for the sweeper to reclaim.
func (s *verificationService) Submit(userID uint, udyam, status, fileName string, file io.Reader) (*model.VerificationRecord, error) {
	logger.Info("Submitting verification record", map[string]interface{}{
		"user_id":      userID,
		"udyam_number": udyam,
	})

	existing, err := s.verificationRepo.FindByUdyamNumber(udyam)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing udyam number", err, map[string]interface{}{
			"udyam_number": udyam,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Submission failed: udyam number already exists", map[string]interface{}{
			"udyam_number": udyam,
		})
		return nil, ErrUdyamAlreadyExists
	}

	path, err := s.store.Save(fileName, file)
	if err != nil {
		logger.Error("Failed to save certificate file", err, map[string]interface{}{
			"udyam_number": udyam,
			"file_name":    fileName,
		})
		return nil, err
	}

	if status == "" {
		status = model.StatusPending
	}

	record := &model.VerificationRecord{
		UserID:          userID,
		UdyamNumber:     udyam,
		CertificatePath: path,
		Status:          status,
	}

	if err := s.verificationRepo.Create(record); err != nil {
		logger.Error("Verification insert failed after file write, leaving orphan for sweeper", err, map[string]interface{}{
			"udyam_number":     udyam,
			"certificate_path": path,
		})
		return nil, err
	}

	logger.Info("Verification record submitted successfully", map[string]interface{}{
		"verification_id": record.ID,
		"user_id":         record.UserID,
		"status":          record.Status,
	})
	return record, nil
}

func (s *verificationService) List() ([]model.VerificationRecord, error) {
	return s.verificationRepo.FindAll()
}

// CertificatePath resolves the stored file for a record id. A missing row and
// a row whose file was deleted externally both come back as not-found.
func (s *verificationService) CertificatePath(id uint) (string, error) {
	record, err := s.verificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRecordNotFound
		}
		return "", err
	}

	if record.CertificatePath == "" || !s.store.Exists(record.CertificatePath) {
		logger.Warn("Certificate file missing on disk", map[string]interface{}{
			"verification_id":  id,
			"certificate_path": record.CertificatePath,
		})
		return "", ErrCertificateNotFound
	}

	return record.CertificatePath, nil
}
