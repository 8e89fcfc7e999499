package export_board

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// UseCase use case выгрузки доски в Excel
type UseCase struct {
	bedRepo      BedRepository
	grid         domain.GridConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bedRepo BedRepository, grid domain.GridConfig, logger Logger) *UseCase {
	return &UseCase{
		bedRepo:      bedRepo,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выгружает доступные пользователю кровати в xlsx
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Фильтр по филиалам пользователя
	filter := domain.BedFilter{BranchIDs: req.Actor.BranchScope(), BranchID: req.BranchID}
	if req.BranchID != nil && !req.Actor.CanAccessBranch(*req.BranchID) {
		uc.logger.Warn("ExportBoard: user=%d has no access to branch=%d", req.Actor.ID, *req.BranchID)
		return nil, ErrAccessDenied
	}

	// 2. Получаем кровати
	beds, err := uc.bedRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("ExportBoard: failed to list beds: %v", err)
		return nil, fmt.Errorf("%w: failed to list beds: %v", ErrInternal, err)
	}

	// 3. Рисуем книгу
	content, err := renderWorkbook(uc.grid, beds)
	if err != nil {
		uc.logger.Error("ExportBoard: failed to render workbook: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	fileName := fmt.Sprintf("spa-board-%s.xlsx", uc.timeProvider.Now().Format(domain.DateFormat))
	uc.logger.Info("ExportBoard: exported %d beds to %s (%d bytes)", len(beds), fileName, len(content))

	return &Response{
		FileName: fileName,
		Content:  content,
		BedCount: len(beds),
	}, nil
}
