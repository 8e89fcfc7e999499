package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// SessionResolver интерфейс провайдера идентификации
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// HTTPMetrics интерфейс метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
