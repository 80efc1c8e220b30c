package get_dashboard_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	getDashboardStats "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/get_dashboard_stats"
)

const (
	msgTooManyBookings = "слишком много бронирований для расчета статистики"
)

// Handler статистика дашборда для одной области (вендор или администратор)
type Handler struct {
	useCase GetDashboardStatsUseCase
	scope   getDashboardStats.Scope
	logger  Logger
}

func NewHandler(useCase GetDashboardStatsUseCase, scope getDashboardStats.Scope, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		scope:   scope,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendor/dashboard/stats и GET /api/v1/admin/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &getDashboardStats.Request{Scope: h.scope})
	if err != nil {
		switch {
		case errors.Is(err, getDashboardStats.ErrAccessDenied):
			h.logger.Warn("GET /%s/dashboard/stats - Access denied", h.scope)
			handlers.RespondForbidden(w, "")

		case errors.Is(err, getDashboardStats.ErrTooManyBookings):
			h.logger.Error("GET /%s/dashboard/stats - %v", h.scope, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooManyBookings)

		default:
			h.logger.Error("GET /%s/dashboard/stats - Failed to derive stats: %v", h.scope, err)
			handlers.RespondFailure(w, err)
		}
		return
	}

	h.logger.Info("GET /%s/dashboard/stats - Stats derived from %d bookings", h.scope, result.BookingsCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
