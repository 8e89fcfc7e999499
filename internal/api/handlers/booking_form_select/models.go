package booking_form_select

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// SelectRequest выбор клиента и/или услуги в открытой форме.
// Клиент применяется первым, затем услуга пересчитывает время окончания.
type SelectRequest struct {
	Draft      domain.AppointmentData `json:"draft"`
	CustomerID *int64                 `json:"customerId,omitempty"`
	Service    *string                `json:"service,omitempty"`
}

// SelectResponse обновленный черновик
type SelectResponse struct {
	Draft *domain.AppointmentData `json:"draft"`
}
