package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenLifetime  = 12 * time.Hour
	RefreshTokenLifetime = 7 * 24 * time.Hour
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrWrongTokenUse = errors.New("token used for the wrong purpose")
)

type Claims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsStaff   bool   `json:"is_staff"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var configuredSecret []byte

// SetSecret installs the signing secret from configuration. An empty value
// falls back to the JWT_SECRET environment variable.
func SetSecret(s string) {
	if s == "" {
		configuredSecret = nil
		return
	}
	configuredSecret = []byte(s)
}

func secret() []byte {
	if configuredSecret != nil {
		return configuredSecret
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("nurastays-insecure-dev-secret")
}

func generate(userID uint, email, name string, isStaff bool, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:    userID,
		Email:     email,
		Name:      name,
		IsStaff:   isStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(secret())
}

// GenerateTokenPair issues a short-lived access token and a longer-lived
// refresh token for a staff identity. Each refresh token carries its own JTI
// so it can be revoked individually.
func GenerateTokenPair(userID uint, email, name string, isStaff bool) (*TokenPair, error) {
	access, err := generate(userID, email, name, isStaff, TokenTypeAccess, AccessTokenLifetime)
	if err != nil {
		return nil, err
	}
	refresh, err := generate(userID, email, name, isStaff, TokenTypeRefresh, RefreshTokenLifetime)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateAccessToken parses and verifies an access token.
func ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrWrongTokenUse
	}
	return claims, nil
}

// ValidateRefreshToken parses and verifies a refresh token. Blacklist checks
// are the caller's job; this only proves the signature and lifetime.
func ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrWrongTokenUse
	}
	return claims, nil
}
