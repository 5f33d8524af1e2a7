package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Reidvanvliet/golden-chopsticks-service/config"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides authentication for the admin catalog endpoints.
// Customer-facing routes are anonymous; only menu administration needs a
// signed token.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService against the single admin account
// configured through the environment (bcrypt password hash).
type AuthServiceImpl struct {
	adminUser     string
	adminPassHash string
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(authConfig config.AuthConfig) *AuthServiceImpl {
	return &AuthServiceImpl{
		adminUser:     authConfig.AdminUser,
		adminPassHash: authConfig.AdminPasswordHash,
		jwtSecret:     []byte(authConfig.JWTSecret),
		tokenDuration: authConfig.TokenDuration,
	}
}

// Login verifies the admin credentials and returns a signed access token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.adminUser || s.adminPassHash == "" {
		// Burn a comparison anyway so unknown usernames cost the same
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPassHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := ClaimsWithJWT{
		Claims: dto.Claims{
			Username: username,
			Role:     dto.RoleAdmin,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies an access token, returning its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok {
		return nil, ErrInvalidToken
	}
	return &claims.Claims, nil
}
