package identity

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("identity: invalid credentials")

	// ErrNoSession возвращается, когда токен недействителен или сессия не найдена
	ErrNoSession = errors.New("identity: no session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("identity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("identity: internal error")
)
