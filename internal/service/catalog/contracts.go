package catalog

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// CatalogLoader источник справочных данных (встроенный или PostgreSQL)
type CatalogLoader interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
