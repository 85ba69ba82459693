package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aidar/localtime-bot/internal/domain"
	"github.com/aidar/localtime-bot/internal/handler"
	"github.com/aidar/localtime-bot/internal/service"
)

// ContextKey это кастомный тип для ключей контекста
type ContextKey string

// SubjectKey ключ контекста для субъекта токена
const SubjectKey ContextKey = "subject"

// TokenValidator проверяет JWT токены
type TokenValidator interface {
	ValidateToken(token string) (*service.Claims, error)
}

// AuthMiddleware создает middleware для валидации JWT токенов
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handler.RespondWithError(w, r, http.StatusUnauthorized, string(domain.CodeUnauthorized), "missing authorization header")
				return
			}

			// Проверяем формат Bearer
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handler.RespondWithError(w, r, http.StatusUnauthorized, string(domain.CodeUnauthorized), "invalid authorization header format")
				return
			}

			// Валидируем токен
			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				handler.HandleError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubjectFromContext извлекает субъекта токена из контекста
func GetSubjectFromContext(ctx context.Context) string {
	subject, ok := ctx.Value(SubjectKey).(string)
	if !ok {
		return ""
	}
	return subject
}
