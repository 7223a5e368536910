package modify_booking

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings/models"
)

type BookingService interface {
	Modify(ctx context.Context, customerID, bookingID int64, params *models.ModifyBookingParams, lang i18n.Lang) (*models.ModifyBookingResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
