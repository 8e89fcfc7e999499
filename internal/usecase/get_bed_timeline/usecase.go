package get_bed_timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
	"github.com/m04kA/SMC-SpaBoard/internal/schedule"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

// UseCase use case для построения сетки слотов кровати
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

// Execute строит сетку слотов кровати, высоту блока назначения и оставшееся время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Actor == nil || req.BedID <= 0 {
		return nil, fmt.Errorf("%w: actor and positive bedID are required", ErrInvalidInput)
	}

	// 1. Текущее время читается один раз на операцию
	now := uc.timeProvider.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	// 2. Получаем кровать
	bed, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		if errors.Is(err, bedRepo.ErrBedNotFound) {
			uc.logger.Warn("GetBedTimeline: bed id=%d not found", req.BedID)
			return nil, ErrBedNotFound
		}
		uc.logger.Error("GetBedTimeline: failed to get bed id=%d: %v", req.BedID, err)
		return nil, fmt.Errorf("%w: failed to get bed: %v", ErrInternal, err)
	}

	// 3. Проверяем доступ к филиалу
	if !req.Actor.CanAccessBranch(bed.BranchID) {
		uc.logger.Warn("GetBedTimeline: user=%d has no access to bed id=%d", req.Actor.ID, bed.ID)
		return nil, ErrAccessDenied
	}

	// 4. Строим слоты
	resp := &Response{
		Bed:   bed,
		Date:  date,
		Now:   types.FromTime(now),
		Slots: make([]domain.Slot, 0, uc.grid.SlotCount),
	}
	var firstSlot *int
	for slot := range schedule.Slots(uc.grid, bed) {
		if slot.First {
			index := slot.Index
			firstSlot = &index
		}
		resp.Slots = append(resp.Slots, slot)
	}

	// 5. Блок назначения
	if bed.Assignment != nil {
		resp.Assignment = &AssignmentBlock{
			Assignment: bed.Assignment,
			FirstSlot:  firstSlot,
			HeightPixels: schedule.VisualHeight(
				bed.Assignment.StartTime,
				bed.Assignment.EstimatedEndTime,
				uc.grid.SlotPixelHeight,
				uc.grid.GapPixels,
				uc.grid.MinHeightPixels,
			),
		}
		if sameDay(date, now) {
			remaining := schedule.RemainingUntil(resp.Now, bed.Assignment.EstimatedEndTime)
			resp.Assignment.Remaining = &remaining
		}
	}

	uc.logger.Info("GetBedTimeline: bed id=%d status=%s slots=%d", bed.ID, bed.Status, len(resp.Slots))
	return resp, nil
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
