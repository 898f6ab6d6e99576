package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"company-directory/internal/database/models"
	apperrors "company-directory/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the user lookups the auth service needs
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
}

// AuthService provides authentication functionality
type AuthService struct {
	config   *AuthConfig
	userRepo UserRepository
	now      func() time.Time
}

// AuthClaims represents JWT session claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"5b3f2c52-3c1b-4b7e-9a55-2f4d1f0f3a10"`
	Email    string `json:"email" example:"test@example.com"`
	Name     string `json:"name" example:"Test User"`
	Verified bool   `json:"verified" example:"true"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SessionUser is the signed-in user as exposed to pages
type SessionUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		userRepo: userRepo,
		now:      time.Now,
	}, nil
}

// Login checks the credentials and returns the user with a fresh session token
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return user, token, nil
}

// CurrentUser reloads the user behind a session so account changes apply without signing in again
func (s *AuthService) CurrentUser(claims *AuthClaims) (*models.User, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// GenerateJWT creates a session token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Name:     user.Name,
		Verified: user.IsVerified(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a session token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HashPassword hashes a plain-text password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ToSessionUser projects claims onto the shape shared with pages
func (c *AuthClaims) ToSessionUser() *SessionUser {
	return &SessionUser{
		ID:       c.UserID,
		Name:     c.Name,
		Email:    c.Email,
		Verified: c.Verified,
	}
}
