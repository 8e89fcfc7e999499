package beds

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// BedRepository интерфейс реестра кроватей
type BedRepository interface {
	Create(ctx context.Context, bed *domain.Bed) (*domain.Bed, error)
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
	List(ctx context.Context, filter domain.BedFilter) ([]*domain.Bed, error)
	Update(ctx context.Context, id int64, mutate func(bed *domain.Bed) error) (*domain.Bed, error)
	Delete(ctx context.Context, id int64) (*domain.Bed, error)
	CountByStatus(ctx context.Context, filter domain.BedFilter) (map[domain.BedStatus]int, error)
}

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// Metrics интерфейс метрик
type Metrics interface {
	StatusTransition(from, to string)
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
