package confirm_extension

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	confirmExtension "github.com/voltride/VR-CustomerPortal/internal/usecase/confirm_extension"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidBookingID   = "identificador de reserva no válido"
	msgMissingCustomerID  = "cliente no identificado"
	msgForbidden          = "la reserva pertenece a otro cliente"
	msgNoSession          = "primero hay que comprobar la disponibilidad de la prolongación"
	msgProposalMismatch   = "la fecha confirmada no coincide con la comprobada, repita la comprobación"
	msgNotConfirmable     = "la prolongación no está disponible para confirmar"
	msgAgencyUnavailable  = "el pago en la agencia no está disponible para esta reserva"
	msgAlreadySubmitting  = "la confirmación ya está en curso"
	msgInvalidInput       = "datos de la prolongación no válidos"
	msgPlatformError      = "el servicio no está disponible, inténtelo más tarde"
)

type Handler struct {
	useCase ConfirmExtensionUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmExtensionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/customer-portal/bookings/{bookingId}/extend/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/extend/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/extend/confirm - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/extend/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, confirmExtension.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/extend/confirm - Validation failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, confirmExtension.ErrNoSession):
			h.logger.Warn("POST /bookings/{id}/extend/confirm - No session: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNoSession)

		case errors.Is(err, confirmExtension.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/extend/confirm - Access denied: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmExtension.ErrProposalMismatch):
			h.logger.Warn("POST /bookings/{id}/extend/confirm - Proposal mismatch: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgProposalMismatch)

		case errors.Is(err, confirmExtension.ErrNotConfirmable):
			h.logger.Warn("POST /bookings/{id}/extend/confirm - Session not confirmable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotConfirmable)

		case errors.Is(err, confirmExtension.ErrAgencyUnavailable):
			h.logger.Warn("POST /bookings/{id}/extend/confirm - Agency payment unavailable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgAgencyUnavailable)

		case errors.Is(err, confirmExtension.ErrAlreadySubmitting):
			h.logger.Warn("POST /bookings/{id}/extend/confirm - Already submitting: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadySubmitting)

		default:
			h.logger.Error("POST /bookings/{id}/extend/confirm - Failed to confirm extension: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
