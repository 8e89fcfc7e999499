package cancel_assignment

import "errors"

var (
	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("cancel_assignment: bed not found")

	// ErrNoAssignment возвращается, когда на кровати нет назначения
	ErrNoAssignment = errors.New("cancel_assignment: bed has no assignment")

	// ErrAssignmentMismatch возвращается, когда указанная запись не совпадает с назначением кровати
	ErrAssignmentMismatch = errors.New("cancel_assignment: appointment does not match bed assignment")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к филиалу кровати
	ErrAccessDenied = errors.New("cancel_assignment: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_assignment: internal error")
)
