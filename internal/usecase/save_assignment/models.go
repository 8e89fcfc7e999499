package save_assignment

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Mode режим сохранения
type Mode string

const (
	// ModeCreate новая запись на свободную кровать
	ModeCreate Mode = "create"
	// ModeEdit замена текущего назначения кровати
	ModeEdit Mode = "edit"
)

// Request модель запроса на сохранение назначения
type Request struct {
	Actor                 *domain.User           // Текущий пользователь
	BedID                 int64                  // ID кровати
	Draft                 domain.AppointmentData // Черновик из формы записи
	ExistingAppointmentID *string                // ID редактируемой записи (режим edit)
}

// Response результат сохранения
type Response struct {
	Mode          Mode
	AppointmentID string
	Bed           *domain.Bed // Кровать после сохранения
}
