package export_board

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// BedRepository интерфейс реестра кроватей
type BedRepository interface {
	List(ctx context.Context, filter domain.BedFilter) ([]*domain.Bed, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
