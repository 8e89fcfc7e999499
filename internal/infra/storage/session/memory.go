package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса
type MemoryStore struct {
	mu      sync.Mutex
	prefix  string
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore создает хранилище сессий в памяти. ttl <= 0 означает бессрочные сессии
func NewMemoryStore(prefix string, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		prefix:  prefix,
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Save сохраняет пользователя под ключом prefix+id
func (s *MemoryStore) Save(_ context.Context, id string, user *domain.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}

	entry := memoryEntry{data: data}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[s.prefix+id] = entry
	return nil
}

// Load возвращает пользователя сессии. Поврежденная или истекшая запись удаляется
func (s *MemoryStore) Load(_ context.Context, id string) (*domain.User, error) {
	key := s.prefix + id

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.entries, key)
		return nil, ErrSessionNotFound
	}

	user, ok := decodeUser(entry.data)
	if !ok {
		delete(s.entries, key)
		return nil, ErrSessionNotFound
	}
	return user, nil
}

// Delete удаляет сессию. Отсутствие записи ошибкой не считается
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, s.prefix+id)
	return nil
}
