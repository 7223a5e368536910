package request_login_code

import (
	"errors"
	"net/http"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/service/auth"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidEmail       = "dirección de email no válida"
	msgCustomerNotFound   = "no existe ninguna cuenta con ese email"
	msgCodeSent           = "código enviado, revise su bandeja de entrada"
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

// Handle POST /api/customer-portal/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SendLoginCode(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			h.logger.Warn("POST /login - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, auth.ErrCustomerNotFound):
			h.logger.Warn("POST /login - Customer not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("POST /login - Failed to send login code: email=%s, error=%v", req.Email, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Message: msgCodeSent})
}
