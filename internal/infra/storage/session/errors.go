package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет, она истекла или была повреждена
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("session.store: storage error")
)
