package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/account"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle PATCH /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	var req marketplace.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/me - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		case errors.Is(err, account.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		default:
			h.logger.Error("PATCH /users/me - Failed to update profile: user_id=%s, error=%v", userID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("PATCH /users/me - Profile updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
