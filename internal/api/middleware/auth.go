package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

// Auth пропускает только запросы с авторизованной сессией
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		if !ok || !s.IsAuthenticated() {
			handlers.RespondUnauthorized(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole пропускает только пользователей с одной из ролей
// Используется после Auth
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := session.FromContext(r.Context())
			if !ok || !s.IsAuthenticated() {
				handlers.RespondUnauthorized(w, "")
				return
			}
			for _, role := range roles {
				if s.User.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, "")
		})
	}
}
