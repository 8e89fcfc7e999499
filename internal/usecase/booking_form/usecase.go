package booking_form

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
	"github.com/m04kA/SMC-SpaBoard/internal/schedule"
	"github.com/m04kA/SMC-SpaBoard/internal/usecase/save_assignment"
	"github.com/m04kA/SMC-SpaBoard/pkg/validator"
)

// UseCase use case формы записи: открытие, выбор услуги и клиента, отправка
type UseCase struct {
	bedRepo BedRepository
	catalog CatalogProvider
	saver   AssignmentSaver
	grid    domain.GridConfig
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bedRepo BedRepository,
	catalog CatalogProvider,
	saver AssignmentSaver,
	grid domain.GridConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bedRepo: bedRepo,
		catalog: catalog,
		saver:   saver,
		grid:    grid,
		logger:  logger,
	}
}

// Open открывает форму. Кровать с назначением открывается на редактирование,
// свободная кровать на создание с временем начала из выбранного слота.
func (uc *UseCase) Open(ctx context.Context, req *OpenRequest) (*Form, error) {
	uc.logger.Info("BookingForm.Open: bed=%d", req.BedID)

	// 1. Получаем кровать и проверяем доступ
	bed, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		if errors.Is(err, bedRepo.ErrBedNotFound) {
			uc.logger.Warn("BookingForm.Open: bed id=%d not found", req.BedID)
			return nil, ErrBedNotFound
		}
		uc.logger.Error("BookingForm.Open: failed to get bed id=%d: %v", req.BedID, err)
		return nil, fmt.Errorf("%w: failed to get bed: %v", ErrInternal, err)
	}
	if req.Actor == nil || !req.Actor.CanAccessBranch(bed.BranchID) {
		uc.logger.Warn("BookingForm.Open: access denied to bed id=%d", req.BedID)
		return nil, ErrAccessDenied
	}

	// 2. Справочник для вариантов выбора
	catalog, err := uc.catalog.Get(ctx)
	if err != nil {
		uc.logger.Error("BookingForm.Open: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	form := &Form{Options: buildOptions(catalog, bed.BranchID)}

	// 3. Режим редактирования
	if bed.Assignment != nil {
		if req.AppointmentID != nil && *req.AppointmentID != bed.Assignment.AppointmentID {
			uc.logger.Warn("BookingForm.Open: appointment %s does not match bed id=%d", *req.AppointmentID, bed.ID)
			return nil, ErrAssignmentMismatch
		}
		id := bed.Assignment.AppointmentID
		form.Mode = save_assignment.ModeEdit
		form.ExistingAppointmentID = &id
		form.Draft = domain.DraftFromAssignment(bed)
		return form, nil
	}
	if req.AppointmentID != nil {
		uc.logger.Warn("BookingForm.Open: bed id=%d has no assignment %s", bed.ID, *req.AppointmentID)
		return nil, ErrAssignmentMismatch
	}

	// 4. Режим создания
	if !bed.IsAvailable() {
		uc.logger.Warn("BookingForm.Open: bed id=%d is %s", bed.ID, bed.Status)
		return nil, fmt.Errorf("%w: %s", ErrBedNotAvailable, bed.Status)
	}

	start := uc.grid.Start
	if req.SlotIndex != nil {
		slot, ok := schedule.SlotAt(uc.grid, bed, *req.SlotIndex)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrSlotOutOfRange, *req.SlotIndex)
		}
		start = slot.Start
	}

	bedID := bed.ID
	draft := &domain.AppointmentData{
		BedID:     &bedID,
		BedName:   bed.Name,
		StartTime: start,
	}
	if req.Service != "" {
		if err := applyService(draft, catalog, req.Service); err != nil {
			uc.logger.Warn("BookingForm.Open: default service: %v", err)
			return nil, err
		}
	}

	form.Mode = save_assignment.ModeCreate
	form.Draft = draft
	return form, nil
}

// SelectService выбирает услугу и пересчитывает время окончания
func (uc *UseCase) SelectService(ctx context.Context, draft domain.AppointmentData, service string) (*domain.AppointmentData, error) {
	catalog, err := uc.catalog.Get(ctx)
	if err != nil {
		uc.logger.Error("BookingForm.SelectService: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	if err := applyService(&draft, catalog, service); err != nil {
		uc.logger.Warn("BookingForm.SelectService: %v", err)
		return nil, err
	}
	return &draft, nil
}

// SelectCustomer выбирает клиента из справочника и подставляет имя и телефон
func (uc *UseCase) SelectCustomer(ctx context.Context, draft domain.AppointmentData, customerID int64) (*domain.AppointmentData, error) {
	catalog, err := uc.catalog.Get(ctx)
	if err != nil {
		uc.logger.Error("BookingForm.SelectCustomer: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	customer, ok := catalog.CustomerByID(customerID)
	if !ok {
		uc.logger.Warn("BookingForm.SelectCustomer: customer id=%d not found", customerID)
		return nil, fmt.Errorf("%w: id=%d", ErrCustomerNotFound, customerID)
	}

	id := customer.ID
	draft.CustomerID = &id
	draft.CustomerName = customer.Name
	draft.CustomerPhone = customer.Phone
	return &draft, nil
}

// Submit проверяет обязательные поля и передает черновик ровно одним вызовом сохранения
func (uc *UseCase) Submit(ctx context.Context, req *SubmitRequest) (*save_assignment.Response, error) {
	uc.logger.Info("BookingForm.Submit: bed=%d", req.BedID)

	if err := validator.Struct(&req.Draft); err != nil {
		uc.logger.Warn("BookingForm.Submit: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return uc.saver.Execute(ctx, &save_assignment.Request{
		Actor:                 req.Actor,
		BedID:                 req.BedID,
		Draft:                 req.Draft,
		ExistingAppointmentID: req.ExistingAppointmentID,
	})
}

// applyService ставит услугу и выводит время окончания по ее длительности
func applyService(draft *domain.AppointmentData, catalog *domain.Catalog, name string) error {
	service, ok := catalog.ServiceByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrServiceNotFound, name)
	}
	end, err := schedule.DeriveEndTime(draft.StartTime, service.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, &validator.FieldsError{
			Fields: map[string]string{"endTime": err.Error()},
		})
	}
	draft.Service = service.Name
	draft.EndTime = end
	return nil
}

func buildOptions(catalog *domain.Catalog, branchID int64) Options {
	return Options{
		Customers: append([]domain.Customer(nil), catalog.Customers...),
		Services:  append([]domain.Service(nil), catalog.Services...),
		Staff:     catalog.StaffByBranch(branchID),
	}
}
