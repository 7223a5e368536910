package update_profile

import (
	"errors"
	"net/http"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	"github.com/voltride/VR-CustomerPortal/internal/service/profile"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgMissingCustomerID  = "cliente no identificado"
	msgNotFound           = "perfil no encontrado"
	msgInvalidFields      = "los datos del perfil no son válidos"
	msgPlatformError      = "el servicio no está disponible, inténtelo más tarde"
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

// Handle PUT /api/customer-portal/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("PUT /profile - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Update(r.Context(), customerID, req.ToServiceParams())
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrValidation):
			h.logger.Warn("PUT /profile - Validation failed: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, profile.ErrProfileNotFound):
			h.logger.Warn("PUT /profile - Profile not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /profile - Failed to update profile: customer_id=%d, error=%v", customerID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	lang := middleware.GetLang(r.Context())
	handlers.RespondJSON(w, http.StatusOK, UpdateResponse{
		Profile: view,
		Message: i18n.T(lang, "profile.saved"),
	})
}
