package middleware

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

// SessionHeader заголовок с ID сессии для клиентов без cookie
const SessionHeader = "X-Session-ID"

// SessionID достает ID сессии из cookie или заголовка X-Session-ID
func SessionID(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(SessionHeader)
}

// Session восстанавливает сессию запроса и кладет ее в контекст
// Запросы без сессии продолжаются как анонимные
func Session(manager SessionManager, cookieName string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := manager.Init(r.Context(), SessionID(r, cookieName))
			if err != nil {
				if errors.Is(err, session.ErrUnavailable) {
					logger.Warn("Session middleware: %s %s - api unavailable: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnavailable(w)
					return
				}
				logger.Error("Session middleware: %s %s - failed to init session: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}
