package check_extension

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	checkExtension "github.com/voltride/VR-CustomerPortal/internal/usecase/check_extension"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidBookingID   = "identificador de reserva no válido"
	msgMissingCustomerID  = "cliente no identificado"
	msgNotFound           = "reserva no encontrada"
	msgForbidden          = "la reserva pertenece a otro cliente"
	msgCannotExtend       = "esta reserva ya no se puede prolongar"
	msgInvalidInput       = "la nueva fecha de devolución no es válida"
	msgPlatformError      = "el servicio no está disponible, inténtelo más tarde"
)

type Handler struct {
	useCase CheckExtensionUseCase
	logger  Logger
}

func NewHandler(useCase CheckExtensionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/customer-portal/bookings/{bookingId}/extend/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/extend/check - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/extend/check - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req CheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/extend/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, checkExtension.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/extend/check - Validation failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkExtension.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/extend/check - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkExtension.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/extend/check - Access denied: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, checkExtension.ErrCannotExtend):
			h.logger.Warn("POST /bookings/{id}/extend/check - Booking not extendable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotExtend)

		default:
			h.logger.Error("POST /bookings/{id}/extend/check - Failed to check extension: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
