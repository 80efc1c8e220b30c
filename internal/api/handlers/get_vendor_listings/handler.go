package get_vendor_listings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

type Handler struct {
	service ListingService
	logger  Logger
}

func NewHandler(service ListingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendor/listings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	result, err := h.service.ListMine(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, listings.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("GET /vendor/listings - Failed to list listings: user_id=%s, error=%v", userID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("GET /vendor/listings - Listings retrieved: user_id=%s, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
