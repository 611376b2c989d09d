package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256 token for the restaurant owner. The
// secret comes from config, not from the environment directly.
func GenerateToken(secret []byte, subject string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty JWT secret")
	}

	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
