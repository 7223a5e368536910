package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "identificador de reserva no válido"
	msgMissingCustomerID = "cliente no identificado"
	msgNotFound          = "reserva no encontrada"
	msgForbidden         = "la reserva pertenece a otro cliente"
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

// Handle GET /api/customer-portal/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	detail, err := h.service.GetByID(r.Context(), customerID, bookingID, middleware.GetLang(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, detail)
}
