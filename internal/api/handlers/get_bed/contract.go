package get_bed

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
)

type BedService interface {
	Get(ctx context.Context, actor *domain.User, id int64) (*models.BedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
