package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT mints an HS256 bearer token with the given subject and expiry.
func GenerateJWT(subject string, secret string, issuer string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
