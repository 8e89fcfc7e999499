package click_slot

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Action результат клика по слоту
type Action string

const (
	// ActionOpenBooking открыть форму записи с черновиком
	ActionOpenBooking Action = "open_booking"
	// ActionNotice показать уведомление, форма не открывается
	ActionNotice Action = "notice"
)

// Request модель запроса клика по слоту
type Request struct {
	Actor     *domain.User // Текущий пользователь
	BedID     int64        // ID кровати
	SlotIndex int          // Индекс слота в сетке
}

// Response результат клика
type Response struct {
	Action Action
	Slot   domain.Slot
	Draft  *domain.AppointmentData // Черновик для формы (только open_booking)
	Notice string                  // Текст уведомления (только notice)
}
