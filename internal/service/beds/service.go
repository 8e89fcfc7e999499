package beds

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/appointment"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
	"github.com/m04kA/SMC-SpaBoard/pkg/validator"
)

// Service сервис реестра кроватей
type Service struct {
	bedRepo         BedRepository
	appointmentRepo AppointmentRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса кроватей
func NewService(
	bedRepo BedRepository,
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bedRepo:         bedRepo,
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Create добавляет кровать в реестр со статусом available
func (s *Service) Create(ctx context.Context, actor *domain.User, req *models.BedRequest) (*models.BedResponse, error) {
	s.logger.Info("Create: user=%d creating bed name=%q branch=%d", actor.ID, req.Name, req.BranchID)

	// 1. Валидация входных данных
	if err := validator.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Проверяем доступ к филиалу
	if !actor.CanAccessBranch(req.BranchID) {
		s.logger.Warn("Create: user=%d has no access to branch=%d", actor.ID, req.BranchID)
		return nil, ErrAccessDenied
	}

	// 3. Создаем кровать
	spec := req.ToDomainSpec()
	created, err := s.bedRepo.Create(ctx, &domain.Bed{
		Name:        spec.Name,
		Room:        spec.Room,
		BranchID:    spec.BranchID,
		Type:        spec.Type,
		Status:      domain.BedStatusAvailable,
		Equipment:   spec.Equipment,
		LastCleaned: types.FromTime(s.timeProvider.Now()),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created bed id=%d", created.ID)
	return models.FromDomainBed(created), nil
}

// Update заменяет редактируемые атрибуты кровати. Статус и назначение не меняются
func (s *Service) Update(ctx context.Context, actor *domain.User, id int64, req *models.BedRequest) (*models.BedResponse, error) {
	s.logger.Info("Update: user=%d updating bed id=%d", actor.ID, id)

	if err := validator.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for bed id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Проверяем доступ к текущему филиалу кровати
	if _, err := s.getAccessible(ctx, actor, id, "Update"); err != nil {
		return nil, err
	}

	// Перенос в другой филиал требует доступа и к нему
	if !actor.CanAccessBranch(req.BranchID) {
		s.logger.Warn("Update: user=%d has no access to target branch=%d", actor.ID, req.BranchID)
		return nil, ErrAccessDenied
	}

	spec := req.ToDomainSpec()
	updated, err := s.bedRepo.Update(ctx, id, func(bed *domain.Bed) error {
		bed.Name = spec.Name
		bed.Room = spec.Room
		bed.BranchID = spec.BranchID
		bed.Type = spec.Type
		bed.Equipment = spec.Equipment
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated bed id=%d", id)
	return models.FromDomainBed(updated), nil
}

// Delete удаляет кровать вместе с назначением; запись журнала назначения отменяется
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	s.logger.Info("Delete: user=%d deleting bed id=%d", actor.ID, id)

	if _, err := s.getAccessible(ctx, actor, id, "Delete"); err != nil {
		return err
	}

	removed, err := s.bedRepo.Delete(ctx, id)
	if err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	// Назначение удаленной кровати больше не будет выполнено
	if removed.Assignment != nil {
		s.closeAppointment(ctx, "Delete", removed.Assignment.AppointmentID, domain.AppointmentCancelled)
	}

	s.logger.Info("Delete: successfully deleted bed id=%d", id)
	return nil
}

// SetStatus применяет прямую смену статуса: завершение уборки или обслуживания.
// Переход в occupied выполняет только сохранение назначения, выход из occupied только завершение услуги.
func (s *Service) SetStatus(ctx context.Context, actor *domain.User, id int64, req *models.SetStatusRequest) (*models.BedResponse, error) {
	s.logger.Info("SetStatus: user=%d bed id=%d to status=%s", actor.ID, id, req.Status)

	// 1. Валидация статуса
	target := domain.BedStatus(req.Status)
	if !target.IsValid() {
		s.logger.Warn("SetStatus: invalid status=%q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	// 2. Проверяем доступ
	if _, err := s.getAccessible(ctx, actor, id, "SetStatus"); err != nil {
		return nil, err
	}

	// 3. Атомарно проверяем и применяем переход
	var from domain.BedStatus
	updated, err := s.bedRepo.Update(ctx, id, func(bed *domain.Bed) error {
		from = bed.Status
		if target == domain.BedStatusOccupied {
			return fmt.Errorf("%w: %s -> %s requires an assignment", ErrInvalidTransition, from, target)
		}
		if from == domain.BedStatusOccupied {
			return fmt.Errorf("%w: %s -> %s requires completing the service", ErrInvalidTransition, from, target)
		}
		if !domain.CanTransition(from, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
		}
		bed.Status = target
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			s.logger.Warn("SetStatus: bed id=%d: %v", id, err)
			return nil, err
		}
		return nil, s.mapRepoError("SetStatus", id, err)
	}

	s.metrics.StatusTransition(string(from), string(target))
	s.logger.Info("SetStatus: bed id=%d moved %s -> %s", id, from, target)
	return models.FromDomainBed(updated), nil
}

// Get возвращает кровать по ID
func (s *Service) Get(ctx context.Context, actor *domain.User, id int64) (*models.BedResponse, error) {
	bed, err := s.getAccessible(ctx, actor, id, "Get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainBed(bed), nil
}

// List возвращает кровати доступных пользователю филиалов
func (s *Service) List(ctx context.Context, actor *domain.User, req *models.ListBedsRequest) (*models.BedListResponse, error) {
	filter, err := s.buildFilter(actor, req)
	if err != nil {
		return nil, err
	}

	beds, err := s.bedRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: user=%d found %d beds", actor.ID, len(beds))
	return models.FromDomainBeds(beds), nil
}

// Stats возвращает количество кроватей по статусам
func (s *Service) Stats(ctx context.Context, actor *domain.User, req *models.ListBedsRequest) (*models.StatsResponse, error) {
	filter, err := s.buildFilter(actor, req)
	if err != nil {
		return nil, err
	}
	filter.Status = nil

	counts, err := s.bedRepo.CountByStatus(ctx, filter)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{ByStatus: make(map[string]int, len(counts))}
	for status, count := range counts {
		resp.ByStatus[string(status)] = count
		resp.Total += count
	}
	return resp, nil
}

// Вспомогательные методы

// getAccessible получает кровать и проверяет доступ пользователя к ее филиалу
func (s *Service) getAccessible(ctx context.Context, actor *domain.User, id int64, op string) (*domain.Bed, error) {
	bed, err := s.bedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	if !actor.CanAccessBranch(bed.BranchID) {
		s.logger.Warn("%s: user=%d has no access to bed id=%d (branch=%d)", op, actor.ID, id, bed.BranchID)
		return nil, ErrAccessDenied
	}
	return bed, nil
}

func (s *Service) buildFilter(actor *domain.User, req *models.ListBedsRequest) (domain.BedFilter, error) {
	filter := domain.BedFilter{BranchIDs: actor.BranchScope()}
	if req == nil {
		return filter, nil
	}

	filter.BranchID = req.BranchID
	if req.Status != nil {
		status := domain.BedStatus(*req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}
	if req.Type != nil {
		bedType := domain.BedType(*req.Type)
		if !bedType.IsValid() {
			return filter, fmt.Errorf("%w: unknown bed type %q", ErrInvalidInput, *req.Type)
		}
		filter.Type = &bedType
	}
	return filter, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, bedRepo.ErrBedNotFound) {
		s.logger.Warn("%s: bed id=%d not found", op, id)
		return ErrBedNotFound
	}
	s.logger.Error("%s: repository error for bed id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// closeAppointment переводит запись журнала в финальный статус. Отсутствие записи не ошибка
func (s *Service) closeAppointment(ctx context.Context, op, appointmentID string, status domain.AppointmentStatus) {
	err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, status)
	if err == nil {
		return
	}
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment %s not found in journal", op, appointmentID)
		return
	}
	s.logger.Error("%s: failed to update appointment %s: %v", op, appointmentID, err)
}
