package get_assistance_links

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/voltride/VR-CustomerPortal/internal/api/handlers"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	"github.com/voltride/VR-CustomerPortal/internal/assistance"
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings"
	"github.com/voltride/VR-CustomerPortal/internal/service/profile"
)

const (
	msgInvalidBookingID  = "identificador de reserva no válido"
	msgMissingCustomerID = "cliente no identificado"
	msgNotFound          = "reserva no encontrada"
	msgForbidden         = "la reserva pertenece a otro cliente"
	msgPlatformError     = "el servicio no está disponible, inténtelo más tarde"
)

type Handler struct {
	bookingService BookingService
	profileService ProfileService
	phone          string
	phoneDisplay   string
	logger         Logger
}

func NewHandler(bookingService BookingService, profileService ProfileService, phone, phoneDisplay string, logger Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		profileService: profileService,
		phone:          phone,
		phoneDisplay:   phoneDisplay,
		logger:         logger,
	}
}

// Handle GET /api/customer-portal/bookings/{bookingId}/assistance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/assistance - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/assistance - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	lang := middleware.GetLang(r.Context())

	detail, err := h.bookingService.GetByID(r.Context(), customerID, bookingID, lang)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/assistance - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/assistance - Access denied: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/assistance - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUpstreamError(w, err, msgPlatformError)
		}
		return
	}

	req := assistance.Request{
		Booking: &assistance.BookingSummary{
			Reference:   detail.Booking.Reference,
			VehicleName: detail.Booking.VehicleName,
			StartDate:   detail.Booking.StartDate.String(),
			StartTime:   detail.Booking.StartTime.String(),
			EndDate:     detail.Booking.CurrentEndDate.String(),
			EndTime:     detail.Booking.CurrentEndTime.String(),
		},
		MapsLink: r.URL.Query().Get("mapsLink"),
	}

	// Имя и email клиента обогащают сообщение, но их отсутствие
	// не блокирует виджет
	if view, err := h.profileService.Get(r.Context(), customerID); err == nil {
		req.CustomerName = strings.TrimSpace(view.FirstName + " " + view.LastName)
		req.CustomerEmail = view.Email
	} else if !errors.Is(err, profile.ErrProfileNotFound) {
		h.logger.Warn("GET /bookings/{id}/assistance - Failed to get profile: customer_id=%d, error=%v", customerID, err)
	}

	links := assistance.BuildLinks(lang, h.phone, req)

	handlers.RespondJSON(w, http.StatusOK, AssistanceResponse{
		WhatsAppURL:  links.WhatsAppURL,
		PhoneURL:     links.PhoneURL,
		PhoneDisplay: h.phoneDisplay,
		Message:      links.Message,
	})
}
