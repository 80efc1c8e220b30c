package get_booking_payments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/payments"
)

const msgNotFound = "бронирование не найдено"

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.ListByBooking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, payments.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, payments.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("GET /bookings/{id}/payments - Failed to list payments: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
