package get_vendor_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/vendors"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	msgNotFound = "профиль вендора не найден"
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

// Handle GET /api/v1/vendor/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	vendor, err := h.service.GetMe(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, vendors.ErrVendorNotFound):
			h.logger.Warn("GET /vendor/profile - Vendor profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, vendors.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, vendors.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("GET /vendor/profile - Failed to get vendor profile: user_id=%s, error=%v", userID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("GET /vendor/profile - Vendor profile retrieved: user_id=%s, vendor_id=%s", userID, vendor.ID)
	handlers.RespondJSON(w, http.StatusOK, vendor)
}
