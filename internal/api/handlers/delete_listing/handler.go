package delete_listing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
)

const (
	msgNotFound = "объявление не найдено"
	msgDeleted  = "объявление удалено"
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

// Handle DELETE /api/v1/listings/{listingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	if err := h.service.Delete(r.Context(), listingID); err != nil {
		switch {
		case errors.Is(err, listings.ErrListingNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, listings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("DELETE /listings/{id} - Access denied: listing_id=%s", listingID)
			handlers.RespondForbidden(w, "")
		case errors.Is(err, listings.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		default:
			h.logger.Error("DELETE /listings/{id} - Failed to delete listing: listing_id=%s, error=%v", listingID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("DELETE /listings/{id} - Listing deleted: listing_id=%s", listingID)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted, nil)
}
