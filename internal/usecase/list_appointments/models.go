package list_appointments

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Request модель запроса журнала записей
type Request struct {
	Actor  *domain.User // Текущий пользователь
	BedID  *int64       // Фильтр по кровати (опционально)
	Status *string      // Фильтр по статусу (опционально)
}

// Response записи журнала
type Response struct {
	Appointments []*domain.Appointment
}
