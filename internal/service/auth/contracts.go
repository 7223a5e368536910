package auth

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
)

// RentalPlatformClient интерфейс клиента платформы аренды
type RentalPlatformClient interface {
	SendLoginCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) (*rentalplatform.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
