package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/account"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetProfile(r.Context())
	if err != nil {
		if errors.Is(err, account.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, "")
			return
		}
		h.logger.Error("GET /users/me - Failed to get profile: %v", err)
		handlers.RespondFailure(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
