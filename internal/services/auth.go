package services

import (
	"errors"
	"fmt"

	"philharmonic-tickets/internal/models"
	"philharmonic-tickets/internal/utils"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(req *models.UserCreateRequest) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdateProfile(id int, fullName, email *string) (*models.User, error)
	UpdatePassword(id int, passwordHash string) error
}

// AuthService handles registration and login
type AuthService struct {
	userRepo UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	FullName string `json:"full_name" validate:"max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string          `json:"token"`
	Role  models.UserRole `json:"role"`
}

// Register creates a new user account with the default user role and returns
// a session token. Duplicate usernames surface as ErrUsernameTaken; the
// uniqueness check rides on the store's constraint, so two concurrent
// registrations cannot both succeed and a failed one leaves no row.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(&models.UserCreateRequest{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         models.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Role: user.Role}, nil
}

// Login verifies credentials and returns a session token. An unknown
// username and a wrong password produce the same ErrInvalidCredentials, so
// the response never reveals whether the username exists. Login mutates no
// stored state.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Role: user.Role}, nil
}
