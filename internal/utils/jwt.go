package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs an HS256 access token for subject with the given role.
func GenerateToken(secret, subject, role string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
