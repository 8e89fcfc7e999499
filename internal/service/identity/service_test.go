package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/user"
	"github.com/m04kA/SMC-SpaBoard/internal/service/identity/models"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
	"github.com/m04kA/SMC-SpaBoard/pkg/token"
	"github.com/m04kA/SMC-SpaBoard/pkg/validator"
)

const sessionPrefix = "spa:session:"

type fixture struct {
	svc    *Service
	store  *session.RedisStore
	redis  *miniredis.Miniredis
	tokens *token.Service
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users, err := userRepo.DemoUsers(bcrypt.MinCost)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &fixture{
		store: session.NewRedisStore(client, sessionPrefix, time.Hour),
		redis: mr,
		now:   time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC),
	}
	f.tokens = token.NewService("test-secret", "spa-board", time.Hour).WithClock(func() time.Time { return f.now })
	f.svc = NewService(userRepo.NewRepository(users), f.store, f.tokens, logger.NewNop())
	return f
}

func TestService_LoginResolveLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.svc.Login(ctx, &models.LoginRequest{Username: "letan", Password: "letan123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, f.now.Add(time.Hour), resp.ExpiresAt)
	assert.Equal(t, "receptionist", resp.User.Role)
	assert.Equal(t, []int64{1}, resp.User.BranchIDs)
	assert.Contains(t, resp.User.Permissions, string(domain.PermManageBookings))
	assert.NotContains(t, resp.User.Permissions, string(domain.PermManageBeds))

	claims, err := f.tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.True(t, f.redis.Exists(sessionPrefix+claims.ID))

	user, err := f.svc.Resolve(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Empty(t, user.PasswordHash)

	require.NoError(t, f.svc.Logout(ctx, resp.Token))
	assert.False(t, f.redis.Exists(sessionPrefix+claims.ID))

	_, err = f.svc.Resolve(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, f.svc.Logout(ctx, resp.Token))
}

func TestService_LoginRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Login(ctx, &models.LoginRequest{Username: "letan", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &models.LoginRequest{Username: "ghost", Password: "letan123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &models.LoginRequest{Username: " ", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
	var fields *validator.FieldsError
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields.Fields, "username")
	assert.Contains(t, fields.Fields, "password")

	assert.Empty(t, f.redis.Keys())
}

func TestService_ResolveWithoutSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, ErrNoSession)

	resp, err := f.svc.Login(ctx, &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	claims, err := f.tokens.Validate(resp.Token)
	require.NoError(t, err)

	t.Run("malformed record", func(t *testing.T) {
		require.NoError(t, f.redis.Set(sessionPrefix+claims.ID, "{not json"))
		_, err := f.svc.Resolve(ctx, resp.Token)
		assert.ErrorIs(t, err, ErrNoSession)
		assert.False(t, f.redis.Exists(sessionPrefix+claims.ID))
	})

	t.Run("record of another user", func(t *testing.T) {
		require.NoError(t, f.store.Save(ctx, claims.ID, &domain.User{ID: 4, Username: "kythuat", Role: domain.RoleTherapist}))
		_, err := f.svc.Resolve(ctx, resp.Token)
		assert.ErrorIs(t, err, ErrNoSession)
		assert.False(t, f.redis.Exists(sessionPrefix+claims.ID))
	})
}

func TestService_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.svc.Login(ctx, &models.LoginRequest{Username: "quanly", Password: "quanly123"})
	require.NoError(t, err)

	f.now = f.now.Add(61 * time.Minute)
	_, err = f.svc.Resolve(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestPermissions(t *testing.T) {
	therapist := &domain.User{ID: 4, Role: domain.RoleTherapist, BranchIDs: []int64{2}}
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	assert.True(t, HasPermission(therapist, domain.PermViewBeds))
	assert.False(t, HasPermission(therapist, domain.PermManageBookings))
	assert.False(t, HasPermission(nil, domain.PermViewBeds))

	assert.True(t, CanAccessBranch(therapist, 2))
	assert.False(t, CanAccessBranch(therapist, 1))
	assert.True(t, CanAccessBranch(admin, 7))
}
