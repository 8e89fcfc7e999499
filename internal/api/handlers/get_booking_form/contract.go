package get_booking_form

import (
	"context"

	bookingForm "github.com/m04kA/SMC-SpaBoard/internal/usecase/booking_form"
)

type BookingFormUseCase interface {
	Open(ctx context.Context, req *bookingForm.OpenRequest) (*bookingForm.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
