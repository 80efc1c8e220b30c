package initiate_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/payments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAlreadyPaid        = "бронирование уже оплачено"
)

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

// Handle POST /api/v1/payments/initiate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req marketplace.InitiatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/initiate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	payment, err := h.service.Initiate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		case errors.Is(err, payments.ErrPaymentNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, payments.ErrAlreadyPaid):
			handlers.RespondConflict(w, handlers.UpstreamMessage(err, msgAlreadyPaid))
		case errors.Is(err, payments.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, payments.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("POST /payments/initiate - Failed to initiate payment: booking_id=%s, error=%v", req.BookingID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("POST /payments/initiate - Payment initiated: booking_id=%s, reference=%s", req.BookingID, payment.Reference)
	handlers.RespondJSON(w, http.StatusCreated, payment)
}
