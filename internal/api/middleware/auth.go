package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/access"
	"github.com/m04kA/SMC-SpaBoard/internal/service/identity"
)

type contextKey int

const (
	userKey contextKey = iota
	tokenKey
)

const (
	msgMissingToken     = "chưa đăng nhập"
	msgSessionExpired   = "phiên đăng nhập không hợp lệ hoặc đã hết hạn"
	msgPermissionDenied = "bạn không có quyền thực hiện thao tác này"
	bearerPrefix        = "Bearer "
	authorizationHeader = "Authorization"
)

// Auth проверяет Bearer токен и кладет пользователя сессии в контекст
func Auth(resolver SessionResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("Auth: %s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrNoSession) {
					logger.Warn("Auth: %s %s - no session: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgSessionExpired)
					return
				}
				logger.Error("Auth: %s %s - failed to resolve session: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermissions пропускает запрос, только если у пользователя сессии есть все разрешения
func RequirePermissions(logger Logger, perms ...domain.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			decision := access.Check(user, perms...)
			if !decision.Allowed {
				logger.Warn("RequirePermissions: user=%d %s %s - missing %v",
					user.ID, r.Method, r.URL.Path, decision.MissingNames())
				handlers.RespondMissingPermissions(w, msgPermissionDenied, decision.MissingNames())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithUser кладет пользователя в контекст (для тестов обработчиков)
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser возвращает пользователя сессии из контекста
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}

// GetToken возвращает токен сессии из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// WithToken кладет токен в контекст (для тестов обработчиков)
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(authorizationHeader)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	return token, token != ""
}
