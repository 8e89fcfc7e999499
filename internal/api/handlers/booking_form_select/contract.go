package booking_form_select

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

type BookingFormUseCase interface {
	SelectService(ctx context.Context, draft domain.AppointmentData, service string) (*domain.AppointmentData, error)
	SelectCustomer(ctx context.Context, draft domain.AppointmentData, customerID int64) (*domain.AppointmentData, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
