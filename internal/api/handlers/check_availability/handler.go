package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgListingNotFound    = "объявление не найдено"
	msgInvalidDate        = "дата события в прошлом"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/check-availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrListingNotFound):
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, checkAvailability.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, msgInvalidInput))

		default:
			h.logger.Error("POST /bookings/check-availability - Failed to check availability: listing_id=%s, error=%v",
				req.ListingID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/check-availability - listing_id=%s, date=%s, available=%t, source=%s",
		req.ListingID, req.Date, result.Available, result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
