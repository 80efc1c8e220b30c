package verify_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/payments"
)

const msgNotFound = "платеж не найден"

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

// Handle GET /api/v1/payments/verify/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	payment, err := h.service.Verify(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, payments.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, err.Error()))
		case errors.Is(err, payments.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")
		case errors.Is(err, payments.ErrAccessDenied):
			handlers.RespondForbidden(w, "")
		default:
			h.logger.Error("GET /payments/verify/{reference} - Failed to verify payment: reference=%s, error=%v", reference, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("GET /payments/verify/{reference} - reference=%s, status=%s", reference, payment.Status)
	handlers.RespondJSON(w, http.StatusOK, payment)
}
