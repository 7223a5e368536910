package list_bookings

import (
	"net/http"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
)

const (
	msgMissingCustomerID = "cliente no identificado"
	msgPlatformError     = "el servicio no está disponible, inténtelo más tarde"
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

// Handle GET /api/customer-portal/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	result, err := h.service.List(r.Context(), customerID, middleware.GetLang(r.Context()))
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: customer_id=%d, error=%v", customerID, err)
		handlers.RespondUpstreamError(w, err, msgPlatformError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
