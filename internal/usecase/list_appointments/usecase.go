package list_appointments

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// UseCase use case получения журнала записей
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute возвращает записи филиалов, доступных пользователю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	filter := domain.AppointmentFilter{
		BranchIDs: req.Actor.BranchScope(),
		BedID:     req.BedID,
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		switch status {
		case domain.AppointmentScheduled, domain.AppointmentCompleted, domain.AppointmentCancelled:
			filter.Status = &status
		default:
			uc.logger.Warn("ListAppointments: invalid status=%q", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	appointments, err := uc.appointmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("ListAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	uc.logger.Info("ListAppointments: user=%d found %d appointments", req.Actor.ID, len(appointments))
	return &Response{Appointments: appointments}, nil
}
