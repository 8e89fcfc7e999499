package click_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
	"github.com/m04kA/SMC-SpaBoard/internal/schedule"
)

// UseCase use case обработки клика по слоту сетки
type UseCase struct {
	bedRepo BedRepository
	grid    domain.GridConfig
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bedRepo BedRepository, grid domain.GridConfig, logger Logger) *UseCase {
	return &UseCase{
		bedRepo: bedRepo,
		grid:    grid,
		logger:  logger,
	}
}

// Execute решает, открыть ли форму записи или показать уведомление.
// Форма открывается только для свободной кровати; черновик получает время слота и кровать.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Получаем кровать
	bed, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		if errors.Is(err, bedRepo.ErrBedNotFound) {
			uc.logger.Warn("ClickSlot: bed id=%d not found", req.BedID)
			return nil, ErrBedNotFound
		}
		uc.logger.Error("ClickSlot: failed to get bed id=%d: %v", req.BedID, err)
		return nil, fmt.Errorf("%w: failed to get bed: %v", ErrInternal, err)
	}

	// 2. Проверяем доступ к филиалу
	if req.Actor == nil || !req.Actor.CanAccessBranch(bed.BranchID) {
		uc.logger.Warn("ClickSlot: access denied to bed id=%d", bed.ID)
		return nil, ErrAccessDenied
	}

	// 3. Находим слот
	slot, ok := schedule.SlotAt(uc.grid, bed, req.SlotIndex)
	if !ok {
		uc.logger.Warn("ClickSlot: slot index=%d out of range for bed id=%d", req.SlotIndex, bed.ID)
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSlotOutOfRange, req.SlotIndex, uc.grid.SlotCount)
	}

	// 4. Занятая, убираемая или обслуживаемая кровать дает уведомление
	if !bed.IsAvailable() {
		uc.logger.Info("ClickSlot: bed id=%d is %s, showing notice", bed.ID, bed.Status)
		return &Response{
			Action: ActionNotice,
			Slot:   slot,
			Notice: fmt.Sprintf("%s hiện %s, không thể đặt lịch lúc %s", bed.Name, bed.Status.Label(), slot.Start),
		}, nil
	}

	// 5. Черновик записи для формы
	bedID := bed.ID
	uc.logger.Info("ClickSlot: opening booking for bed id=%d at %s", bed.ID, slot.Start)
	return &Response{
		Action: ActionOpenBooking,
		Slot:   slot,
		Draft: &domain.AppointmentData{
			BedID:     &bedID,
			BedName:   bed.Name,
			StartTime: slot.Start,
		},
	}, nil
}
