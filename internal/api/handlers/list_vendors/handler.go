package list_vendors

import (
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
)

type Handler struct {
	service VendorService
	logger  Logger
}

func NewHandler(service VendorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handlers.ParsePage(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /vendors - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("GET /vendors - Failed to list vendors: page=%d, error=%v", page, err)
		handlers.RespondFailure(w, err)
		return
	}

	h.logger.Info("GET /vendors - Vendors retrieved: page=%d, count=%d", page, len(result.Data))
	handlers.RespondJSON(w, http.StatusOK, result)
}
