package verify_login_code

import (
	"context"

	"github.com/voltride/VR-CustomerPortal/internal/service/auth/models"
)

type AuthService interface {
	VerifyCode(ctx context.Context, email, code string) (*models.CustomerView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
