package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
)

type countingLoader struct {
	calls int
	err   error
	inner CatalogLoader
}

func (l *countingLoader) Load(ctx context.Context) (*domain.Catalog, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.inner.Load(ctx)
}

func TestService_GetCachesCatalog(t *testing.T) {
	ctx := context.Background()
	loader := &countingLoader{inner: catalogRepo.NewStatic()}
	svc := NewService(loader, logger.NewNop())

	first, err := svc.Get(ctx)
	require.NoError(t, err)
	second, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.calls)

	require.NoError(t, svc.Reload(ctx))
	assert.Equal(t, 2, loader.calls)
}

func TestService_GetRetriesAfterFailure(t *testing.T) {
	ctx := context.Background()
	loader := &countingLoader{inner: catalogRepo.NewStatic(), err: errors.New("connection refused")}
	svc := NewService(loader, logger.NewNop())

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)

	loader.err = nil
	c, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Services)
	assert.Equal(t, 2, loader.calls)
}

func TestService_ViewIsBranchScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewService(catalogRepo.NewStatic(), logger.NewNop())

	therapist := &domain.User{ID: 4, Role: domain.RoleTherapist, BranchIDs: []int64{2}}
	view, err := svc.View(ctx, therapist)
	require.NoError(t, err)

	require.Len(t, view.Branches, 1)
	assert.Equal(t, int64(2), view.Branches[0].ID)
	for _, r := range view.Rooms {
		assert.Equal(t, int64(2), r.BranchID)
	}
	for _, st := range view.Staff {
		assert.Equal(t, int64(2), st.BranchID)
	}
	assert.Len(t, view.Services, 6)

	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	full, err := svc.View(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, full.Branches, 2)
	assert.Len(t, full.Rooms, 5)
}
