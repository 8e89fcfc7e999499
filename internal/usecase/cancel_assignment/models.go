package cancel_assignment

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Request модель запроса на отмену назначения
type Request struct {
	Actor         *domain.User // Текущий пользователь
	BedID         int64        // ID кровати
	AppointmentID *string      // Ожидаемый ID записи (опционально)
}

// Response результат отмены
type Response struct {
	Bed           *domain.Bed // Кровать после отмены (статус available)
	AppointmentID string      // ID отмененной записи
}
