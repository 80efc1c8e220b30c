package get_vendor_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	msgNotVendor = "профиль вендора не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendor/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	filter, err := handlers.ParseBookingsFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /vendor/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.ListVendor(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /vendor/bookings - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, "")

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotVendor)

		default:
			h.logger.Error("GET /vendor/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("GET /vendor/bookings - Bookings retrieved successfully: user_id=%s, count=%d", userID, len(result.Data))
	handlers.RespondJSON(w, http.StatusOK, result)
}
