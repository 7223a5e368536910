package profile

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
)

// RentalPlatformClient интерфейс клиента платформы аренды
type RentalPlatformClient interface {
	GetProfile(ctx context.Context, customerID int64) (*rentalplatform.Profile, error)
	UpdateProfile(ctx context.Context, customerID int64, req *rentalplatform.UpdateProfileRequest) (*rentalplatform.Profile, error)
	RequestDataDeletion(ctx context.Context, customerID int64) (*rentalplatform.DeletionRequestResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
