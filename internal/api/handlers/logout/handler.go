package logout

import (
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const msgLoggedOut = "сессия завершена"

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

// Handle POST /api/v1/auth/logout
// Выход без сессии считается успешным
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if ok && s.ID != "" {
		if err := h.manager.Logout(r.Context(), s); err != nil {
			h.logger.Error("POST /auth/logout - Failed to logout: session_id=%s, error=%v", s.ID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Info("POST /auth/logout - Session closed: session_id=%s", s.ID)
	}

	h.cookie.Clear(w)
	handlers.RespondMessage(w, http.StatusOK, msgLoggedOut, nil)
}
