package booking_form

import "errors"

var (
	// ErrValidation возвращается, когда форма не заполнена (имя клиента и услуга обязательны)
	ErrValidation = errors.New("booking_form: validation failed")

	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("booking_form: bed not found")

	// ErrBedNotAvailable возвращается, когда форма создания открывается для несвободной кровати
	ErrBedNotAvailable = errors.New("booking_form: bed is not available")

	// ErrAssignmentMismatch возвращается, когда запись не совпадает с назначением кровати
	ErrAssignmentMismatch = errors.New("booking_form: appointment does not match bed assignment")

	// ErrSlotOutOfRange возвращается, когда индекс слота вне сетки
	ErrSlotOutOfRange = errors.New("booking_form: slot index out of range")

	// ErrServiceNotFound возвращается, когда услуга не найдена в справочнике
	ErrServiceNotFound = errors.New("booking_form: service not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден в справочнике
	ErrCustomerNotFound = errors.New("booking_form: customer not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к филиалу кровати
	ErrAccessDenied = errors.New("booking_form: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_form: internal error")
)
