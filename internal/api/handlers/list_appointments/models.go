package list_appointments

import (
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	listAppointments "github.com/m04kA/SMC-SpaBoard/internal/usecase/list_appointments"
)

// AppointmentResponse запись журнала
type AppointmentResponse struct {
	ID           string `json:"id"`
	BedID        int64  `json:"bedId"`
	BedName      string `json:"bedName"`
	BranchID     int64  `json:"branchId"`
	CustomerID   *int64 `json:"customerId,omitempty"`
	CustomerName string `json:"customerName"`
	Service      string `json:"service"`
	Staff        string `json:"staff,omitempty"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAppointments.Response) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(resp.Appointments))
	for _, a := range resp.Appointments {
		items = append(items, fromDomain(a))
	}
	return &AppointmentListResponse{Appointments: items, Total: len(items)}
}

func fromDomain(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:           a.ID,
		BedID:        a.BedID,
		BedName:      a.BedName,
		BranchID:     a.BranchID,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		Service:      a.Service,
		Staff:        a.Staff,
		StartTime:    a.StartTime.String(),
		EndTime:      a.EndTime.String(),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}
