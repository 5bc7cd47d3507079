package services

import (
	"fmt"

	"philharmonic-tickets/internal/models"
	"philharmonic-tickets/internal/utils"
)

// UserService handles profile operations
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the identified user's record
func (s *UserService) GetProfile(identity models.Identity) (*models.User, error) {
	return s.userRepo.GetByUsername(identity.Username)
}

// UpdateProfile applies the non-nil fields of the request to the identified
// user. A new password is re-hashed before storage; the role is never
// touched here.
func (s *UserService) UpdateProfile(identity models.Identity, req *models.ProfileUpdateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
			return nil, err
		}
	}

	if req.FullName != nil || req.Email != nil {
		return s.userRepo.UpdateProfile(user.ID, req.FullName, req.Email)
	}

	return s.userRepo.GetByID(user.ID)
}
