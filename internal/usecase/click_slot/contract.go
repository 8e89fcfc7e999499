package click_slot

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// BedRepository интерфейс реестра кроватей
type BedRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
