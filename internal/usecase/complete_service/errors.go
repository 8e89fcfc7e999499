package complete_service

import "errors"

var (
	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("complete_service: bed not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к филиалу кровати
	ErrAccessDenied = errors.New("complete_service: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_service: internal error")
)
