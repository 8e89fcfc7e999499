package complete_service

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Request модель запроса на завершение услуги
type Request struct {
	Actor *domain.User // Текущий пользователь
	BedID int64        // ID кровати
}

// Response результат завершения услуги
type Response struct {
	Bed                  *domain.Bed      // Кровать после завершения (статус cleaning)
	CompletedAppointment *string          // ID завершенной записи, если назначение было
	PreviousStatus       domain.BedStatus // Статус до завершения
}
