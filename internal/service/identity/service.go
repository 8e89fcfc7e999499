package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	sessionStore "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/user"
	"github.com/m04kA/SMC-SpaBoard/internal/service/identity/models"
	"github.com/m04kA/SMC-SpaBoard/pkg/password"
	"github.com/m04kA/SMC-SpaBoard/pkg/validator"
)

// Service провайдер идентификации: вход по таблице пользователей и сессии по jti токена
type Service struct {
	userRepo UserRepository
	sessions SessionStore
	tokens   TokenService
	logger   Logger
}

// NewService создает новый экземпляр сервиса идентификации
func NewService(userRepo UserRepository, sessions SessionStore, tokens TokenService, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login проверяет пароль, выпускает токен и сохраняет запись сессии
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: attempt for username=%q", req.Username)

	// 1. Валидация входных данных
	if err := validator.Struct(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Ищем пользователя
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username=%q", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем пароль
	if !password.Verify(req.Password, user.PasswordHash) {
		s.logger.Warn("Login: wrong password for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	// 4. Выпускаем токен
	issued, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	// 5. Сохраняем сессию под jti
	if err := s.sessions.Save(ctx, issued.ID, user); err != nil {
		s.logger.Error("Login: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: Login - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%d signed in, session=%s", user.ID, issued.ID)
	return &models.LoginResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      models.FromDomainUser(user),
	}, nil
}

// Logout удаляет сессию токена. Повторный выход ошибкой не считается
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		s.logger.Warn("Logout: invalid token: %v", err)
		return fmt.Errorf("%w: Logout - %v", ErrNoSession, err)
	}

	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		s.logger.Error("Logout: failed to delete session=%s: %v", claims.ID, err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session=%s closed", claims.ID)
	return nil
}

// Resolve возвращает пользователя сессии по токену
func (s *Service) Resolve(ctx context.Context, tokenString string) (*domain.User, error) {
	// 1. Проверяем подпись и срок действия
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - %v", ErrNoSession, err)
	}

	// 2. Читаем запись сессии
	user, err := s.sessions.Load(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		s.logger.Error("Resolve: session store error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - session store: %v", ErrInternal, err)
	}

	// 3. Запись должна принадлежать владельцу токена
	userID, err := claims.UserID()
	if err != nil || userID != user.ID {
		s.logger.Warn("Resolve: session=%s does not belong to token subject %q", claims.ID, claims.Subject)
		if delErr := s.sessions.Delete(ctx, claims.ID); delErr != nil {
			s.logger.Error("Resolve: failed to drop session=%s: %v", claims.ID, delErr)
		}
		return nil, ErrNoSession
	}

	return user, nil
}

// HasPermission проверяет, дает ли роль пользователя разрешение
func HasPermission(user *domain.User, perm domain.Permission) bool {
	return user.HasPermission(perm)
}

// CanAccessBranch проверяет доступ пользователя к филиалу. Администратор видит все филиалы
func CanAccessBranch(user *domain.User, branchID int64) bool {
	return user.CanAccessBranch(branchID)
}
