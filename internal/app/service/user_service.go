package service

import (
	"errors"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/app/repository"
	"github.com/datanetra/msme-registry/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type UserService interface {
	Register(fullName, email, mobile string, role model.UserRole) (*model.User, error)
	List() ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(fullName, email, mobile string, role model.UserRole) (*model.User, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"email":     email,
		"full_name": fullName,
	})

	// Pre-check for a friendly error; the unique index catches the race loser.
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, ErrEmailAlreadyExists
	}

	user := &model.User{
		FullName:     fullName,
		Email:        email,
		MobileNumber: mobile,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
	return user, nil
}

func (s *userService) List() ([]model.User, error) {
	return s.userRepo.FindAll()
}
