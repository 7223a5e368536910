package cancel_booking

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
	msgCannotCancel      = "esta reserva ya no se puede cancelar"
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

// Handle PUT /api/customer-portal/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id}/cancel - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	result, err := h.service.Cancel(r.Context(), customerID, bookingID, middleware.GetLang(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/cancel - Access denied: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PUT /bookings/{id}/cancel - Booking not cancellable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PUT /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
