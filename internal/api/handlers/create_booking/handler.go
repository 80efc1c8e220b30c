package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
	createBooking "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgListingNotFound    = "объявление не найдено"
	msgListingNotBookable = "объявление не принимает бронирования"
	msgInvalidBookingDate = "дата бронирования в прошлом"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := session.ScopeFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%s, listing_id=%s", userID, req.ListingID)
			handlers.RespondConflict(w, handlers.UpstreamMessage(err, msgSlotNotAvailable))

		case errors.Is(err, createBooking.ErrListingNotFound):
			h.logger.Warn("POST /bookings - Listing not found: listing_id=%s", req.ListingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, createBooking.ErrListingNotBookable):
			handlers.RespondBadRequest(w, msgListingNotBookable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UpstreamMessage(err, msgInvalidInput))

		case errors.Is(err, createBooking.ErrUnauthorized):
			handlers.RespondUnauthorized(w, "")

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, listing_id=%s, error=%v",
				userID, req.ListingID, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, listing_id=%s",
		result.Booking.ID, userID, req.ListingID)
	handlers.RespondJSON(w, http.StatusCreated, result.Booking)
}
