package update_vendor_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/vendors"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNothingToUpdate    = "нет полей для обновления"
	msgNotFound           = "профиль вендора не найден"
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

// Handle PATCH /api/v1/vendor/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	var req UpdateVendorProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /vendor/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.IsEmpty() {
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	vendor, err := h.service.UpdateMe(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, vendors.ErrVendorNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, vendors.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		case errors.Is(err, vendors.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, vendors.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("PATCH /vendor/profile - Failed to update vendor profile: user_id=%s, error=%v", userID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("PATCH /vendor/profile - Vendor profile updated: user_id=%s, vendor_id=%s", userID, vendor.ID)
	handlers.RespondJSON(w, http.StatusOK, vendor)
}
