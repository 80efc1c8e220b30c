package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	getCalendar "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/get_calendar"
)

const (
	msgInvalidMonth  = "некорректный месяц, ожидается YYYY-MM"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendor/calendar?month=YYYY-MM&status=CONFIRMED
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getCalendar.Request{}
	if month := r.URL.Query().Get("month"); month != "" {
		req.Month = &month
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.BookingStatus(status)
		req.Status = &s
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidMonth):
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getCalendar.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, getCalendar.ErrAccessDenied):
			handlers.RespondForbidden(w, "")

		default:
			h.logger.Error("GET /vendor/calendar - Failed to build calendar: %v", err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("GET /vendor/calendar - %d events", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result.Events)
}
