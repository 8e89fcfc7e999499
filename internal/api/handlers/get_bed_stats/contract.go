package get_bed_stats

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
)

type BedService interface {
	Stats(ctx context.Context, actor *domain.User, req *models.ListBedsRequest) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
