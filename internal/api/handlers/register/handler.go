package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/account"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "пользователь с таким email уже зарегистрирован"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req marketplace.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))

		case errors.Is(err, account.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
