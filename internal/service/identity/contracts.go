package identity

import (
	"context"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/token"
)

// UserRepository интерфейс таблицы пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// SessionStore интерфейс хранилища сессий (ключ = jti токена)
type SessionStore interface {
	Save(ctx context.Context, id string, user *domain.User) error
	Load(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// TokenService интерфейс выпуска и проверки токенов сессии
type TokenService interface {
	Generate(userID int64, role string) (*token.Issued, error)
	Validate(tokenString string) (*token.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
