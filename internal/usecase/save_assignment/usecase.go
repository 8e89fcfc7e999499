package save_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/appointment"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
)

// UseCase use case сохранения назначения на кровать (создание или редактирование)
type UseCase struct {
	bedRepo         BedRepository
	appointmentRepo AppointmentRepository
	catalog         CatalogProvider
	idGenerator     IDGenerator
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bedRepo BedRepository,
	appointmentRepo AppointmentRepository,
	catalog CatalogProvider,
	idGenerator IDGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bedRepo:         bedRepo,
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		idGenerator:     idGenerator,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute сохраняет черновик записи как назначение кровати.
// Режим edit заменяет назначение на месте, сохраняя ID записи и не трогая статус кровати.
// Режим create требует свободную кровать и переводит ее в occupied.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	mode := ModeCreate
	if req.ExistingAppointmentID != nil {
		mode = ModeEdit
	}
	uc.logger.Info("SaveAssignment: bed=%d mode=%s service=%q start=%s", req.BedID, mode, req.Draft.Service, req.Draft.StartTime)

	draft := req.Draft

	// 1. Валидация черновика
	if err := validateDraft(&draft); err != nil {
		uc.logger.Warn("SaveAssignment: %v", err)
		return nil, err
	}

	// 2. Время окончания из справочника услуг
	catalog, err := uc.catalog.Get(ctx)
	if err != nil {
		uc.logger.Error("SaveAssignment: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}
	if err := resolveEndTime(&draft, catalog); err != nil {
		uc.logger.Warn("SaveAssignment: %v", err)
		return nil, err
	}

	// 3. Получаем кровать и проверяем доступ
	current, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		return nil, uc.mapBedError(req.BedID, err)
	}
	if req.Actor == nil || !req.Actor.CanAccessBranch(current.BranchID) {
		uc.logger.Warn("SaveAssignment: access denied to bed id=%d", req.BedID)
		return nil, ErrAccessDenied
	}

	bedID := current.ID
	draft.BedID = &bedID
	draft.BedName = current.Name

	// 4. Атомарно применяем назначение
	var (
		appointmentID string
		fromStatus    domain.BedStatus
	)
	if mode == ModeEdit {
		appointmentID = *req.ExistingAppointmentID
	} else {
		appointmentID = uc.idGenerator.NewID()
	}

	updated, err := uc.bedRepo.Update(ctx, req.BedID, func(bed *domain.Bed) error {
		fromStatus = bed.Status
		if mode == ModeEdit {
			if bed.Assignment == nil || bed.Assignment.AppointmentID != appointmentID {
				return ErrAssignmentMismatch
			}
			bed.Assignment = draft.ToAssignment(appointmentID, domain.AssignmentPreparing)
			return nil
		}

		if !bed.IsAvailable() {
			return fmt.Errorf("%w: bed %d is %s", ErrInvalidTransition, bed.ID, bed.Status)
		}
		bed.Status = domain.BedStatusOccupied
		bed.Assignment = draft.ToAssignment(appointmentID, domain.AssignmentPreparing)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAssignmentMismatch) || errors.Is(err, ErrInvalidTransition) {
			uc.logger.Warn("SaveAssignment: bed id=%d: %v", req.BedID, err)
			return nil, err
		}
		return nil, uc.mapBedError(req.BedID, err)
	}

	// 5. Журнал записей
	uc.recordAppointment(ctx, mode, updated, appointmentID)

	uc.metrics.AssignmentSaved(string(mode))
	if fromStatus != updated.Status {
		uc.metrics.StatusTransition(string(fromStatus), string(updated.Status))
	}

	uc.logger.Info("SaveAssignment: bed id=%d saved appointment=%s (%s-%s)",
		updated.ID, appointmentID, updated.Assignment.StartTime, updated.Assignment.EstimatedEndTime)

	return &Response{
		Mode:          mode,
		AppointmentID: appointmentID,
		Bed:           updated,
	}, nil
}

// recordAppointment синхронизирует журнал с назначением. Кровать уже изменена, поэтому ошибки журнала только логируются
func (uc *UseCase) recordAppointment(ctx context.Context, mode Mode, bed *domain.Bed, appointmentID string) {
	a := bed.Assignment
	record := &domain.Appointment{
		ID:           appointmentID,
		BedID:        bed.ID,
		BedName:      bed.Name,
		BranchID:     bed.BranchID,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		Service:      a.Service,
		Staff:        a.Staff,
		StartTime:    a.StartTime,
		EndTime:      a.EstimatedEndTime,
		Status:       domain.AppointmentScheduled,
	}

	if mode == ModeEdit {
		_, err := uc.appointmentRepo.Update(ctx, record)
		if err == nil {
			return
		}
		if !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Error("SaveAssignment: failed to update appointment %s: %v", appointmentID, err)
			return
		}
		uc.logger.Warn("SaveAssignment: appointment %s missing in journal, recreating", appointmentID)
	}

	if _, err := uc.appointmentRepo.Create(ctx, record); err != nil {
		uc.logger.Error("SaveAssignment: failed to create appointment %s: %v", appointmentID, err)
	}
}

func (uc *UseCase) mapBedError(id int64, err error) error {
	if errors.Is(err, bedRepo.ErrBedNotFound) {
		uc.logger.Warn("SaveAssignment: bed id=%d not found", id)
		return ErrBedNotFound
	}
	uc.logger.Error("SaveAssignment: bed repository error for id=%d: %v", id, err)
	return fmt.Errorf("%w: bed repository error: %v", ErrInternal, err)
}
