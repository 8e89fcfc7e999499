package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

const testPrefix = "spa:session:"

func testUser() *domain.User {
	return &domain.User{
		ID:           2,
		Username:     "letan",
		FullName:     "Lê Thị Hoa",
		Role:         domain.RoleReceptionist,
		BranchIDs:    []int64{1},
		PasswordHash: "$2a$10$secret",
	}
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, testPrefix, ttl), mr
}

func TestRedisStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	require.NoError(t, store.Save(ctx, "jti-1", testUser()))
	assert.True(t, mr.Exists(testPrefix+"jti-1"))
	assert.Equal(t, time.Hour, mr.TTL(testPrefix+"jti-1"))

	raw, err := mr.Get(testPrefix + "jti-1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret")

	user, err := store.Load(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, "letan", user.Username)
	assert.Equal(t, []int64{1}, user.BranchIDs)
	assert.Empty(t, user.PasswordHash)

	require.NoError(t, store.Delete(ctx, "jti-1"))
	_, err = store.Load(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_MalformedRecordIsDropped(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, 0)

	require.NoError(t, mr.Set(testPrefix+"broken", "{not json"))

	_, err := store.Load(ctx, "broken")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.False(t, mr.Exists(testPrefix+"broken"))
}

func TestRedisStore_Expired(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)

	require.NoError(t, store.Save(ctx, "jti-2", testUser()))
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "jti-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, 0)
	mr.Close()

	_, err := store.Load(ctx, "jti-3")
	assert.ErrorIs(t, err, ErrStore)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(testPrefix, 30*time.Minute)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "jti-1", testUser()))

	user, err := store.Load(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleReceptionist, user.Role)

	t.Run("malformed record is dropped", func(t *testing.T) {
		store.entries[testPrefix+"broken"] = memoryEntry{data: []byte(`{"id":0}`)}

		_, err := store.Load(ctx, "broken")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.NotContains(t, store.entries, testPrefix+"broken")
	})

	t.Run("expired", func(t *testing.T) {
		now = now.Add(31 * time.Minute)
		_, err := store.Load(ctx, "jti-1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "missing"))
	})
}
