package complete_service

import (
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
	completeService "github.com/m04kA/SMC-SpaBoard/internal/usecase/complete_service"
)

// CompleteServiceResponse кровать после завершения услуги
type CompleteServiceResponse struct {
	Bed                    *models.BedResponse `json:"bed"`
	PreviousStatus         string              `json:"previousStatus"`
	CompletedAppointmentID *string             `json:"completedAppointmentId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeService.Response) *CompleteServiceResponse {
	return &CompleteServiceResponse{
		Bed:                    models.FromDomainBed(resp.Bed),
		PreviousStatus:         string(resp.PreviousStatus),
		CompletedAppointmentID: resp.CompletedAppointment,
	}
}
