package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Auth middleware аутентификации по заголовкам.
// Требует X-User-ID; роль берется из X-User-Role, по умолчанию customer.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "отсутствует заголовок X-User-ID"})
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		switch role {
		case domain.RoleCustomer, domain.RoleManager, domain.RoleAdmin:
		default:
			role = domain.RoleCustomer
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetUserRole возвращает роль пользователя из контекста запроса
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	return role, ok
}
