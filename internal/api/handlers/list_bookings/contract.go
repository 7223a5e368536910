package list_bookings

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, customerID int64, lang i18n.Lang) (*models.ListBookingsResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
