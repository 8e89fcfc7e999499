package delete_bed

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

type BedService interface {
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
