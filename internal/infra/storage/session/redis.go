package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// RedisStore хранилище сессий в Redis
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore создает хранилище сессий поверх клиента Redis. ttl <= 0 означает бессрочные сессии
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Save сохраняет пользователя под ключом prefix+id
func (s *RedisStore) Save(ctx context.Context, id string, user *domain.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrStore, err)
	}
	return nil
}

// Load возвращает пользователя сессии. Поврежденная запись удаляется
func (s *RedisStore) Load(ctx context.Context, id string) (*domain.User, error) {
	key := s.prefix + id

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: Load - %v", ErrStore, err)
	}

	user, ok := decodeUser(data)
	if !ok {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return nil, fmt.Errorf("%w: Load - failed to drop malformed session: %v", ErrStore, err)
		}
		return nil, ErrSessionNotFound
	}
	return user, nil
}

// Delete удаляет сессию
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.prefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrStore, err)
	}
	return nil
}
