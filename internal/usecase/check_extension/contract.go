package check_extension

import (
	"context"
	"time"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// SessionRepository интерфейс репозитория сессий пролонгации
type SessionRepository interface {
	Save(ctx context.Context, session *domain.ExtensionSession) error
	Update(ctx context.Context, session *domain.ExtensionSession) error
}

// RentalPlatformClient интерфейс клиента платформы аренды
type RentalPlatformClient interface {
	GetBooking(ctx context.Context, bookingID int64) (*rentalplatform.Booking, error)
	CheckExtension(ctx context.Context, bookingID int64, newEndDate types.DateString, newEndTime types.TimeString) (*rentalplatform.ExtensionCheck, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
