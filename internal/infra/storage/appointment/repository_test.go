package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/ptr"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

func newTestRepository() *Repository {
	repo := NewRepository()
	repo.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	return repo
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	created, err := repo.Create(ctx, &domain.Appointment{
		ID:           "apt-1",
		BedID:        4,
		CustomerName: "Trần Thị B",
		Service:      "Điều trị mụn",
		StartTime:    types.MustTimeOfDay("09:00"),
		EndTime:      types.MustTimeOfDay("10:00"),
		Status:       domain.AppointmentScheduled,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "apt-1")
	require.NoError(t, err)
	assert.Equal(t, "Trần Thị B", got.CustomerName)

	_, err = repo.Create(ctx, &domain.Appointment{ID: "apt-1"})
	assert.ErrorIs(t, err, ErrAppointmentExists)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_UpdateKeepsStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	_, err := repo.Create(ctx, &domain.Appointment{ID: "apt-1", Service: "Massage body", Status: domain.AppointmentScheduled})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, "apt-1", domain.AppointmentCompleted))

	updated, err := repo.Update(ctx, &domain.Appointment{ID: "apt-1", Service: "Chăm sóc da mặt", Status: domain.AppointmentScheduled})
	require.NoError(t, err)
	assert.Equal(t, "Chăm sóc da mặt", updated.Service)
	assert.Equal(t, domain.AppointmentCompleted, updated.Status)

	_, err = repo.Update(ctx, &domain.Appointment{ID: "missing"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.AppointmentCancelled), ErrAppointmentNotFound)
}

func TestRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	for _, a := range []*domain.Appointment{
		{ID: "a", BedID: 2, BranchID: 1, StartTime: types.MustTimeOfDay("11:00"), Status: domain.AppointmentScheduled},
		{ID: "b", BedID: 1, BranchID: 1, StartTime: types.MustTimeOfDay("09:00"), Status: domain.AppointmentCompleted},
		{ID: "c", BedID: 3, BranchID: 2, StartTime: types.MustTimeOfDay("10:00"), Status: domain.AppointmentScheduled},
	} {
		_, err := repo.Create(ctx, a)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, domain.AppointmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	scheduled, err := repo.List(ctx, domain.AppointmentFilter{Status: ptr.Ptr(domain.AppointmentScheduled), BranchIDs: []int64{1}})
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "a", scheduled[0].ID)

	byBed, err := repo.List(ctx, domain.AppointmentFilter{BedID: ptr.Ptr(int64(3))})
	require.NoError(t, err)
	require.Len(t, byBed, 1)
	assert.Equal(t, "c", byBed[0].ID)
}

func TestRepository_ImportAssignments(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	beds := []*domain.Bed{
		{ID: 1, Name: "Giường 1", BranchID: 1, Status: domain.BedStatusOccupied, Assignment: &domain.Assignment{
			AppointmentID:    "seed-1",
			CustomerName:     "Nguyễn Văn A",
			Service:          "Massage body",
			StartTime:        types.MustTimeOfDay("09:00"),
			EstimatedEndTime: types.MustTimeOfDay("10:30"),
		}},
		{ID: 2, Name: "Giường 2", Status: domain.BedStatusAvailable},
	}

	require.NoError(t, repo.ImportAssignments(ctx, beds))

	got, err := repo.GetByID(ctx, "seed-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.BedID)
	assert.Equal(t, domain.AppointmentScheduled, got.Status)
	assert.Equal(t, "10:30", got.EndTime.String())

	assert.ErrorIs(t, repo.ImportAssignments(ctx, beds), ErrAppointmentExists)
}
