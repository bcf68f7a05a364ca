package auth

import (
	"errors"
	"time"

	"dastawez_backend/internal/config"
	"dastawez_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

type Claims struct {
	UserID string         `json:"user_id"`
	Email  string         `json:"email"`
	Role   models.AppRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an access token for the user. TTL comes from config
// (minutes).
func GenerateToken(userID, email string, role models.AppRole) (string, error) {
	cfg := config.GetConfig()
	now := time.Now().UTC()

	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsAdmin reports whether the claims carry the admin role.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.AppRoleAdmin
}
