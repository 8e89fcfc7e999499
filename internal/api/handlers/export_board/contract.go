package export_board

import (
	"context"

	exportBoard "github.com/m04kA/SMC-SpaBoard/internal/usecase/export_board"
)

type ExportBoardUseCase interface {
	Execute(ctx context.Context, req *exportBoard.Request) (*exportBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
