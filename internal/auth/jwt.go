package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is what a session token asserts about its bearer.
type Claims struct {
	UserID int64
	Role   string
}

// GenerateToken signs an HS256 token for the user that expires after ttl.
func GenerateToken(secret []byte, c Claims, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": c.UserID,
		"role":    c.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	// numbers decode as float64
	id, ok := mc["user_id"].(float64)
	if !ok || id <= 0 {
		return Claims{}, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	role, _ := mc["role"].(string)
	return Claims{UserID: int64(id), Role: role}, nil
}
