package list_listings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
)

const (
	msgInvalidType = "некорректный тип объявления"
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

// Handle GET /api/v1/listings?page=&limit=&type=&city=&search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, limit, err := handlers.ParsePage(q)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	filter := domain.ListingsFilter{
		Page:   page,
		Limit:  limit,
		City:   q.Get("city"),
		Search: q.Get("search"),
	}
	if raw := q.Get("type"); raw != "" {
		listingType := domain.ListingType(raw)
		if listingType != domain.ListingVenue && listingType != domain.ListingService {
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		filter.Type = &listingType
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, listings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
			return
		}
		h.logger.Error("GET /listings - Failed to list listings: %v", err)
		handlers.RespondFailure(w, err)
		return
	}

	h.logger.Info("GET /listings - Listings retrieved: count=%d", len(result.Data))
	handlers.RespondJSON(w, http.StatusOK, result)
}
