package export_board

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет доступа к филиалу
	ErrAccessDenied = errors.New("export_board: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_board: internal error")
)
