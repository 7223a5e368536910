package get_profile

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

// Handle GET /api/customer-portal/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /profile - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	view, err := h.service.Get(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrProfileNotFound):
			h.logger.Warn("GET /profile - Profile not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /profile - Failed to get profile: customer_id=%d, error=%v", customerID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
