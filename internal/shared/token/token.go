// Package token issues and verifies the signed bearer credentials used by the
// HTTP boundary. Tokens bind to the principal's email and carry an expiry;
// signing key and expiry window come from config and never change at runtime.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brochuregen/backend/internal/shared/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type (
	// Claims carries the principal email alongside the registered claims
	Claims struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	Service struct {
		secret []byte
		expiry time.Duration
	}
)

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiry,
	}
}

// Issue signs an HS256 token for the given email, valid for the configured window
func (s *Service) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string and returns the principal email.
// Malformed, tampered, wrongly signed and expired tokens all yield ErrInvalidToken.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	if claims.Email == "" {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}
