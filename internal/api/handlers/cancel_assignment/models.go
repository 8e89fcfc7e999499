package cancel_assignment

import (
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
	cancelAssignment "github.com/m04kA/SMC-SpaBoard/internal/usecase/cancel_assignment"
)

// CancelAssignmentRequest необязательное тело: ожидаемый ID отменяемой записи
type CancelAssignmentRequest struct {
	AppointmentID *string `json:"appointmentId,omitempty"`
}

// CancelAssignmentResponse кровать после отмены
type CancelAssignmentResponse struct {
	Bed                    *models.BedResponse `json:"bed"`
	CancelledAppointmentID string              `json:"cancelledAppointmentId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAssignment.Response) *CancelAssignmentResponse {
	return &CancelAssignmentResponse{
		Bed:                    models.FromDomainBed(resp.Bed),
		CancelledAppointmentID: resp.AppointmentID,
	}
}
