package auth

import (
	"fmt"
	"time"

	"lead-rotation-backend/internal/config"
	apperrors "lead-rotation-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService issues and validates operator session tokens. The deployment has
// a single administrative operator whose credentials come from configuration.
type AuthService struct {
	username     string
	passwordHash string
	secret       []byte
}

// Claims are the JWT claims carried by an operator session token
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new auth service from the loaded configuration
func NewAuthService(cfg *config.Config) *AuthService {
	secret := cfg.JWTSecret
	if secret == "" {
		// Development fallback; config validation rejects this in production.
		secret = "lead-rotation-dev-secret"
	}
	return &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		secret:       []byte(secret),
	}
}

// Login verifies the operator credentials and returns a signed session token
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username || s.passwordHash == "" {
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
