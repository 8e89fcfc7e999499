package complete_service

import (
	"context"

	completeService "github.com/m04kA/SMC-SpaBoard/internal/usecase/complete_service"
)

type CompleteServiceUseCase interface {
	Execute(ctx context.Context, req *completeService.Request) (*completeService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
