package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	apperrors "pandoro-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "pandoro"

// AuthService issues and checks the credentials of Pandoro accounts
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims, the subject is the user id
type AuthClaims struct {
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// HashPassword hashes the password with bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash
func (s *AuthService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckServerSecret verifies the secret presented on sign up. Any secret is accepted
// when the server has none configured.
func (s *AuthService) CheckServerSecret(secret string) error {
	if s.config.ServerSecret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(s.config.ServerSecret), []byte(secret)) != 1 {
		return apperrors.ErrWrongServerSecret
	}
	return nil
}

// GenerateToken creates the access token of the user
func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses the token and returns the user id it was issued to
func (s *AuthService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return userID, nil
}
