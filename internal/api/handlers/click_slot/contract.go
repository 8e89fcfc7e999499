package click_slot

import (
	"context"

	clickSlot "github.com/m04kA/SMC-SpaBoard/internal/usecase/click_slot"
)

type ClickSlotUseCase interface {
	Execute(ctx context.Context, req *clickSlot.Request) (*clickSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
