package click_slot

import "errors"

var (
	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("click_slot: bed not found")

	// ErrSlotOutOfRange возвращается, когда индекс слота вне сетки
	ErrSlotOutOfRange = errors.New("click_slot: slot index out of range")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к филиалу кровати
	ErrAccessDenied = errors.New("click_slot: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("click_slot: internal error")
)
