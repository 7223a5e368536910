package update_profile

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/service/profile/models"
)

type ProfileService interface {
	Update(ctx context.Context, customerID int64, params *models.UpdateProfileParams) (*models.ProfileView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
