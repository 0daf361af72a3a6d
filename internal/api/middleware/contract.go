package middleware

import "github.com/m04kA/CourtBookingService/internal/service/auth"

// TokenVerifier проверяет токен администратора
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
