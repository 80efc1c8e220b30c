package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "email и пароль обязательны"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	manager SessionManager
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(manager SessionManager, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, err := h.manager.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, session.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, session.ErrUnavailable):
			h.logger.Error("POST /auth/login - API unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.cookie.Set(w, s.ID, s.ExpiresAt)

	h.logger.Info("POST /auth/login - User logged in: user_id=%s", s.UserID())
	handlers.RespondJSON(w, http.StatusOK, FromSession(s))
}
