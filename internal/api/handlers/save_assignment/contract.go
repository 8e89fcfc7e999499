package save_assignment

import (
	"context"

	bookingForm "github.com/m04kA/SMC-SpaBoard/internal/usecase/booking_form"
	saveAssignment "github.com/m04kA/SMC-SpaBoard/internal/usecase/save_assignment"
)

type BookingFormUseCase interface {
	Submit(ctx context.Context, req *bookingForm.SubmitRequest) (*saveAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
