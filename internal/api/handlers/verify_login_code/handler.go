package verify_login_code

import (
	"errors"
	"net/http"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/service/auth"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "el código debe tener 6 dígitos"
	msgCustomerNotFound   = "no existe ninguna cuenta con ese email"
	msgInvalidCode        = "código incorrecto o caducado"
	msgPlatformError      = "el servicio no está disponible, inténtelo más tarde"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/customer-portal/verify-code
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /verify-code - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.VerifyCode(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			h.logger.Warn("POST /verify-code - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrCustomerNotFound):
			h.logger.Warn("POST /verify-code - Customer not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, auth.ErrInvalidCode):
			h.logger.Warn("POST /verify-code - Code rejected: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCode)

		default:
			h.logger.Error("POST /verify-code - Failed to verify code: email=%s, error=%v", req.Email, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, VerifyResponse{Customer: customer})
}
