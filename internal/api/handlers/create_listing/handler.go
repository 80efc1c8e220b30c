package create_listing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/listings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	var req marketplace.ListingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /listings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	listing, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		case errors.Is(err, listings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, listings.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("POST /listings - Failed to create listing: user_id=%s, error=%v", userID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("POST /listings - Listing created: listing_id=%s, user_id=%s", listing.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, listing)
}
