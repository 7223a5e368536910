package modify_booking

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
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidBookingID   = "identificador de reserva no válido"
	msgMissingCustomerID  = "cliente no identificado"
	msgNotFound           = "reserva no encontrada"
	msgForbidden          = "la reserva pertenece a otro cliente"
	msgCannotModify       = "esta reserva ya no se puede modificar"
	msgInvalidDates       = "las fechas indicadas no son válidas"
	msgPlatformError      = "el servicio no está disponible, inténtelo más tarde"
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

// Handle PUT /api/customer-portal/bookings/{bookingId}/modify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/modify - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id}/modify - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req ModifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/modify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Modify(r.Context(), customerID, bookingID, req.ToServiceParams(), middleware.GetLang(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrValidation):
			h.logger.Warn("PUT /bookings/{id}/modify - Validation failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/modify - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/modify - Access denied: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotModify):
			h.logger.Warn("PUT /bookings/{id}/modify - Booking not modifiable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotModify)

		default:
			h.logger.Error("PUT /bookings/{id}/modify - Failed to modify booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
