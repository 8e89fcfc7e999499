package save_assignment

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
	saveAssignment "github.com/m04kA/SMC-SpaBoard/internal/usecase/save_assignment"
)

// SaveAssignmentRequest отправка формы записи
type SaveAssignmentRequest struct {
	Draft                 domain.AppointmentData `json:"draft"`
	ExistingAppointmentID *string                `json:"existingAppointmentId,omitempty"`
}

// SaveAssignmentResponse результат сохранения
type SaveAssignmentResponse struct {
	Mode          string              `json:"mode"`
	AppointmentID string              `json:"appointmentId"`
	Bed           *models.BedResponse `json:"bed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveAssignment.Response) *SaveAssignmentResponse {
	return &SaveAssignmentResponse{
		Mode:          string(resp.Mode),
		AppointmentID: resp.AppointmentID,
		Bed:           models.FromDomainBed(resp.Bed),
	}
}
