package get_listing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
)

const (
	msgNotFound = "объявление не найдено"
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

// Handle GET /api/v1/listings/{listingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	listing, err := h.service.GetByID(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, listings.ErrListingNotFound) {
			h.logger.Warn("GET /listings/{id} - Listing not found: listing_id=%s", listingID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /listings/{id} - Failed to get listing: listing_id=%s, error=%v", listingID, err)
		handlers.RespondFailure(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listing)
}
