package confirm_extension

import (
	"context"

	confirmExtension "github.com/voltride/VR-CustomerPortal/internal/usecase/confirm_extension"
)

type ConfirmExtensionUseCase interface {
	Execute(ctx context.Context, req *confirmExtension.Request) (*confirmExtension.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
