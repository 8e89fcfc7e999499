package user

import (
	"context"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Repository in-memory таблица пользователей
type Repository struct {
	mu         sync.RWMutex
	byID       map[int64]*domain.User
	byUsername map[string]*domain.User
}

// NewRepository создает таблицу пользователей
func NewRepository(users []*domain.User) *Repository {
	r := &Repository{
		byID:       make(map[int64]*domain.User, len(users)),
		byUsername: make(map[string]*domain.User, len(users)),
	}
	for _, u := range users {
		if u == nil {
			continue
		}
		stored := cloneUser(u)
		r.byID[stored.ID] = stored
		r.byUsername[strings.ToLower(stored.Username)] = stored
	}
	return r
}

// GetByUsername получает пользователя по логину (без учета регистра)
func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.BranchIDs = append([]int64(nil), u.BranchIDs...)
	return &c
}
