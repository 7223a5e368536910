package bookings

import (
	"context"
	"time"

	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
)

// RentalPlatformClient интерфейс клиента платформы аренды
type RentalPlatformClient interface {
	ListBookings(ctx context.Context, customerID int64) ([]*rentalplatform.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (*rentalplatform.Booking, error)
	ModifyBooking(ctx context.Context, bookingID int64, req *rentalplatform.ModifyBookingRequest) (*rentalplatform.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) (*rentalplatform.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
