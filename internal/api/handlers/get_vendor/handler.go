package get_vendor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/service/vendors"
)

const msgNotFound = "вендор не найден"

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

// Handle GET /api/v1/vendors/{vendorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["vendorId"]

	vendor, err := h.service.GetByID(r.Context(), vendorID)
	if err != nil {
		if errors.Is(err, vendors.ErrVendorNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /vendors/{id} - Failed to get vendor: vendor_id=%s, error=%v", vendorID, err)
		handlers.RespondFailure(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, vendor)
}
