package get_assistance_links

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	bookingModels "github.com/voltride/VR-CustomerPortal/internal/service/bookings/models"
	profileModels "github.com/voltride/VR-CustomerPortal/internal/service/profile/models"
)

type BookingService interface {
	GetByID(ctx context.Context, customerID, bookingID int64, lang i18n.Lang) (*bookingModels.BookingDetail, error)
}

type ProfileService interface {
	Get(ctx context.Context, customerID int64) (*profileModels.ProfileView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
