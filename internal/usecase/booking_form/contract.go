package booking_form

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/usecase/save_assignment"
)

// BedRepository интерфейс реестра кроватей
type BedRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
}

// CatalogProvider интерфейс справочника
type CatalogProvider interface {
	Get(ctx context.Context) (*domain.Catalog, error)
}

// AssignmentSaver интерфейс сохранения назначения
type AssignmentSaver interface {
	Execute(ctx context.Context, req *save_assignment.Request) (*save_assignment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
