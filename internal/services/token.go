package services

import (
	"fmt"
	"time"

	"philharmonic-tickets/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by a session token
type Claims struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. Tokens are
// stateless: verification needs no store round-trip.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue returns a signed token encoding the user's username and role
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns the identity it
// encodes. Any failure surfaces as ErrInvalidCredentials; callers cannot
// distinguish a forged token from an expired one.
func (s *TokenService) Verify(tokenString string) (models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, models.ErrInvalidCredentials
	}

	if claims.Username == "" || (claims.Role != models.RoleUser && claims.Role != models.RoleAdmin) {
		return models.Identity{}, models.ErrInvalidCredentials
	}

	return models.Identity{Username: claims.Username, Role: claims.Role}, nil
}
