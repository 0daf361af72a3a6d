package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
)

type contextKey string

const (
	adminSubjectKey contextKey = "admin_subject"
	requestIDKey    contextKey = "request_id"
)

const (
	msgMissingToken = "se requiere autenticación"
	msgInvalidToken = "token inválido o expirado"
)

// AdminAuth пропускает только запросы с валидным токеном администратора
// в заголовке Authorization: Bearer <token>
func AdminAuth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminSubjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminSubject возвращает subject администратора, прошедшего AdminAuth
func GetAdminSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminSubjectKey).(string)
	return subject, ok
}
