package beds

import "errors"

var (
	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("beds: bed not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("beds: invalid status transition")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к филиалу кровати
	ErrAccessDenied = errors.New("beds: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("beds: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("beds: internal error")
)
