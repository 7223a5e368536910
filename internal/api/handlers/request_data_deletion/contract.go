package request_data_deletion

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/service/profile/models"
)

type ProfileService interface {
	RequestDeletion(ctx context.Context, customerID int64) (*models.DeletionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
