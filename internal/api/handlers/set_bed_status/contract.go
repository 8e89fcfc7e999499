package set_bed_status

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
)

type BedService interface {
	SetStatus(ctx context.Context, actor *domain.User, id int64, req *models.SetStatusRequest) (*models.BedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
