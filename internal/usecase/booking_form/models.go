package booking_form

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/usecase/save_assignment"
)

// OpenRequest запрос на открытие формы записи
type OpenRequest struct {
	Actor         *domain.User // Текущий пользователь
	BedID         int64        // ID кровати
	SlotIndex     *int         // Слот, по которому кликнули (режим create)
	AppointmentID *string      // Редактируемая запись (режим edit)
	Service       string       // Услуга по умолчанию (опционально)
}

// Form состояние открытой формы
type Form struct {
	Mode                  save_assignment.Mode
	Draft                 *domain.AppointmentData
	ExistingAppointmentID *string
	Options               Options
}

// Options варианты для выпадающих списков формы
type Options struct {
	Customers []domain.Customer
	Services  []domain.Service
	Staff     []domain.Staff // Только специалисты филиала кровати
}

// SubmitRequest отправка формы
type SubmitRequest struct {
	Actor                 *domain.User
	BedID                 int64
	Draft                 domain.AppointmentData
	ExistingAppointmentID *string
}
