package save_assignment

import "errors"

var (
	// ErrValidation возвращается, когда черновик записи не прошел валидацию
	ErrValidation = errors.New("save_assignment: validation failed")

	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("save_assignment: bed not found")

	// ErrInvalidTransition возвращается, когда кровать не свободна для новой записи
	ErrInvalidTransition = errors.New("save_assignment: bed is not available")

	// ErrAssignmentMismatch возвращается, когда редактируемая запись не совпадает с назначением кровати
	ErrAssignmentMismatch = errors.New("save_assignment: appointment does not match bed assignment")

	// ErrServiceNotFound возвращается, когда услуга не найдена в справочнике
	ErrServiceNotFound = errors.New("save_assignment: service not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к филиалу кровати
	ErrAccessDenied = errors.New("save_assignment: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_assignment: internal error")
)
