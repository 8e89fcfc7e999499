package list_beds

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
)

type BedService interface {
	List(ctx context.Context, actor *domain.User, req *models.ListBedsRequest) (*models.BedListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
