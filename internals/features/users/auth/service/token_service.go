// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
)

const accessTTL = 12 * time.Hour

// IssueAccessToken membuat access token HS256 dengan klaim sub + role.
func IssueAccessToken(userID uuid.UUID, userName, role string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       userID.String(),
		"user_name": userName,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
