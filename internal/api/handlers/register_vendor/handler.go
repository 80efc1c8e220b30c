package register_vendor

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/vendors"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAlreadyRegistered  = "профиль вендора уже существует"
)

type Handler struct {
	service VendorService
	logger  Logger
}

func NewHandler(service VendorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vendor/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	var req marketplace.VendorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vendor/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vendor, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, vendors.ErrAlreadyRegistered):
			handlers.RespondConflict(w, msgAlreadyRegistered)
		case errors.Is(err, vendors.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		case errors.Is(err, vendors.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, vendors.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("POST /vendor/profile - Failed to register vendor: user_id=%s, error=%v", userID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("POST /vendor/profile - Vendor registered: user_id=%s, vendor_id=%s", userID, vendor.ID)
	handlers.RespondJSON(w, http.StatusCreated, vendor)
}
