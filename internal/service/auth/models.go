package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject subject токена администратора
const AdminSubject = "admin"

// Claims содержимое токена администратора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse выданный токен
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
