package request_data_deletion

import (
	"errors"
	"net/http"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	"github.com/voltride/VR-CustomerPortal/internal/service/profile"
)

const (
	msgMissingCustomerID = "cliente no identificado"
	msgNotFound          = "perfil no encontrado"
	msgActiveBookings    = "no se pueden eliminar los datos mientras tenga reservas activas"
	msgPlatformError     = "el servicio no está disponible, inténtelo más tarde"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/customer-portal/profile/delete-request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /profile/delete-request - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	result, err := h.service.RequestDeletion(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrProfileNotFound):
			h.logger.Warn("POST /profile/delete-request - Profile not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, profile.ErrActiveBookings):
			h.logger.Warn("POST /profile/delete-request - Active bookings: customer_id=%d", customerID)
			handlers.RespondConflict(w, msgActiveBookings)

		default:
			h.logger.Error("POST /profile/delete-request - Failed to request deletion: customer_id=%d, error=%v", customerID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
