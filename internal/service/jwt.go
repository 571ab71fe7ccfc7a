package service

import (
	"errors"
	"os"
	"strconv"
	"time"

	"todo_api/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure returned by ParseToken. Callers
// must not learn whether the signature, structure or expiry was at fault.
var ErrInvalidToken = errors.New("invalid token")

// devSecret is the fallback signing key when SECRET_KEY is unset.
// Known weakness: fine for local development, never for production.
const devSecret = "replace-with-a-long-random-key-in-production"

var (
	jwtSecret []byte
	tokenTTL  = 30 * time.Minute
)

func InitJWT() {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		logger.Warn("SECRET_KEY is not set, falling back to insecure development default")
		secret = devSecret
	}
	jwtSecret = []byte(secret)

	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tokenTTL = time.Duration(n) * time.Minute
		}
	}
}

// GenerateToken issues a signed bearer token with the user's email as
// subject, expiring after the configured TTL.
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates signature and time claims and returns the subject.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	// jwt.Parse already rejects expired tokens when exp is present, but a
	// token without exp must not pass either.
	if _, hasExp := claims["exp"]; !hasExp {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
