package save_assignment

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// BedRepository интерфейс реестра кроватей
type BedRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
	Update(ctx context.Context, id int64, mutate func(bed *domain.Bed) error) (*domain.Bed, error)
}

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// CatalogProvider интерфейс справочника
type CatalogProvider interface {
	Get(ctx context.Context) (*domain.Catalog, error)
}

// IDGenerator интерфейс генератора ID записей
type IDGenerator interface {
	NewID() string
}

// Metrics интерфейс метрик
type Metrics interface {
	AssignmentSaved(mode string)
	StatusTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
