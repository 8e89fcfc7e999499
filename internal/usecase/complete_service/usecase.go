package complete_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/appointment"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

// UseCase use case завершения услуги на кровати
type UseCase struct {
	bedRepo         BedRepository
	appointmentRepo AppointmentRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bedRepo BedRepository,
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bedRepo:         bedRepo,
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute снимает назначение, переводит кровать в cleaning и отмечает время уборки.
// Вызов без назначения допустим: кровать все равно уходит на уборку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteService: bed=%d", req.BedID)

	// 1. Получаем кровать и проверяем доступ
	current, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		return nil, uc.mapBedError(req.BedID, err)
	}
	if req.Actor == nil || !req.Actor.CanAccessBranch(current.BranchID) {
		uc.logger.Warn("CompleteService: access denied to bed id=%d", req.BedID)
		return nil, ErrAccessDenied
	}

	// 2. Текущее время читается один раз на операцию
	now := types.FromTime(uc.timeProvider.Now())

	// 3. Атомарно завершаем услугу
	resp := &Response{}
	updated, err := uc.bedRepo.Update(ctx, req.BedID, func(bed *domain.Bed) error {
		resp.PreviousStatus = bed.Status
		if bed.Assignment != nil {
			id := bed.Assignment.AppointmentID
			resp.CompletedAppointment = &id
		}
		bed.Assignment = nil
		bed.Status = domain.BedStatusCleaning
		bed.LastCleaned = now
		return nil
	})
	if err != nil {
		return nil, uc.mapBedError(req.BedID, err)
	}
	resp.Bed = updated

	// 4. Журнал записей
	if resp.CompletedAppointment != nil {
		if err := uc.appointmentRepo.UpdateStatus(ctx, *resp.CompletedAppointment, domain.AppointmentCompleted); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CompleteService: appointment %s not found in journal", *resp.CompletedAppointment)
			} else {
				uc.logger.Error("CompleteService: failed to complete appointment %s: %v", *resp.CompletedAppointment, err)
			}
		}
		uc.metrics.ServiceCompleted()
	}

	if resp.PreviousStatus != domain.BedStatusCleaning {
		uc.metrics.StatusTransition(string(resp.PreviousStatus), string(domain.BedStatusCleaning))
	}

	uc.logger.Info("CompleteService: bed id=%d %s -> cleaning at %s", updated.ID, resp.PreviousStatus, now)
	return resp, nil
}

func (uc *UseCase) mapBedError(id int64, err error) error {
	if errors.Is(err, bedRepo.ErrBedNotFound) {
		uc.logger.Warn("CompleteService: bed id=%d not found", id)
		return ErrBedNotFound
	}
	uc.logger.Error("CompleteService: bed repository error for id=%d: %v", id, err)
	return fmt.Errorf("%w: bed repository error: %v", ErrInternal, err)
}
