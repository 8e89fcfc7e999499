package cancel_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/appointment"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
)

// UseCase use case отмены назначения до начала услуги
type UseCase struct {
	bedRepo         BedRepository
	appointmentRepo AppointmentRepository
	metrics         Metrics
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
		logger:          logger,
	}
}

// Execute снимает назначение и освобождает кровать. Услуга не проводилась, поэтому уборка не нужна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAssignment: bed=%d", req.BedID)

	// 1. Получаем кровать и проверяем доступ
	current, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		return nil, uc.mapBedError(req.BedID, err)
	}
	if req.Actor == nil || !req.Actor.CanAccessBranch(current.BranchID) {
		uc.logger.Warn("CancelAssignment: access denied to bed id=%d", req.BedID)
		return nil, ErrAccessDenied
	}

	// 2. Атомарно снимаем назначение
	var (
		appointmentID string
		fromStatus    domain.BedStatus
	)
	updated, err := uc.bedRepo.Update(ctx, req.BedID, func(bed *domain.Bed) error {
		if bed.Assignment == nil {
			return ErrNoAssignment
		}
		if req.AppointmentID != nil && *req.AppointmentID != bed.Assignment.AppointmentID {
			return ErrAssignmentMismatch
		}
		appointmentID = bed.Assignment.AppointmentID
		fromStatus = bed.Status
		bed.Assignment = nil
		bed.Status = domain.BedStatusAvailable
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoAssignment) || errors.Is(err, ErrAssignmentMismatch) {
			uc.logger.Warn("CancelAssignment: bed id=%d: %v", req.BedID, err)
			return nil, err
		}
		return nil, uc.mapBedError(req.BedID, err)
	}

	// 3. Журнал записей
	if err := uc.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.AppointmentCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelAssignment: appointment %s not found in journal", appointmentID)
		} else {
			uc.logger.Error("CancelAssignment: failed to cancel appointment %s: %v", appointmentID, err)
		}
	}

	uc.metrics.StatusTransition(string(fromStatus), string(domain.BedStatusAvailable))

	uc.logger.Info("CancelAssignment: bed id=%d released, appointment=%s cancelled", updated.ID, appointmentID)
	return &Response{Bed: updated, AppointmentID: appointmentID}, nil
}

func (uc *UseCase) mapBedError(id int64, err error) error {
	if errors.Is(err, bedRepo.ErrBedNotFound) {
		uc.logger.Warn("CancelAssignment: bed id=%d not found", id)
		return ErrBedNotFound
	}
	uc.logger.Error("CancelAssignment: bed repository error for id=%d: %v", id, err)
	return fmt.Errorf("%w: bed repository error: %v", ErrInternal, err)
}
