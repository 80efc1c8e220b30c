package update_listing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "объявление не найдено"
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

// Handle PATCH /api/v1/listings/{listingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	var req marketplace.ListingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /listings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	listing, err := h.service.Update(r.Context(), listingID, req)
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrListingNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, listings.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		case errors.Is(err, listings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("PATCH /listings/{id} - Access denied: listing_id=%s", listingID)
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("PATCH /listings/{id} - Failed to update listing: listing_id=%s, error=%v", listingID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("PATCH /listings/{id} - Listing updated: listing_id=%s", listingID)
	handlers.RespondJSON(w, http.StatusOK, listing)
}
