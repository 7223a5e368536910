package confirm_extension

import (
	"context"
	"time"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// SessionRepository интерфейс репозитория сессий пролонгации
type SessionRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.ExtensionSession, error)
	Update(ctx context.Context, session *domain.ExtensionSession) error
	BeginSubmit(ctx context.Context, sessionID string) error
	DeleteByBookingID(ctx context.Context, bookingID int64) error
}

// RentalPlatformClient интерфейс клиента платформы аренды
type RentalPlatformClient interface {
	ConfirmExtension(ctx context.Context, bookingID int64, newEndDate types.DateString, newEndTime types.TimeString, paymentMethod string) (*rentalplatform.ExtensionRecord, error)
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
