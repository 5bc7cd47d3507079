package models

import (
	"fmt"
	"regexp"
	"time"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a user in the system
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Identity is the verified (username, role) pair extracted from a session
// token. The transport layer resolves it once per request and passes it
// explicitly into service calls; services never read ambient state.
type Identity struct {
	Username string
	Role     UserRole
}

// IsAdmin returns true if the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// UserCreateRequest represents the data needed to create a new user
type UserCreateRequest struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
}

// ProfileUpdateRequest carries a partial profile update. Only non-nil fields
// overwrite the stored values.
type ProfileUpdateRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

var (
	usernameRegex  = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,64}$`)
	userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate validates user creation data
func (req *UserCreateRequest) Validate() error {
	if !usernameRegex.MatchString(req.Username) {
		return fmt.Errorf("%w: username must be 3-64 characters (letters, digits, '.', '_', '-')", ErrInvalidInput)
	}

	if req.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", ErrInvalidInput)
	}

	if req.Email != "" && !userEmailRegex.MatchString(req.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}

	if err := validateRole(req.Role); err != nil {
		return err
	}

	return nil
}

// Validate validates a partial profile update
func (req *ProfileUpdateRequest) Validate() error {
	if req.FullName == nil && req.Email == nil && req.Password == nil {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if req.Email != nil && !userEmailRegex.MatchString(*req.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}

	if req.Password != nil && len(*req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrInvalidInput)
	}

	return nil
}

func validateRole(role UserRole) error {
	switch role {
	case RoleUser, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("%w: invalid user role %q", ErrInvalidInput, role)
	}
}

// IsAdmin returns true if the user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
