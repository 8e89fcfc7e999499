package beds

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/appointment"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
	"github.com/m04kA/SMC-SpaBoard/pkg/ptr"
	"github.com/m04kA/SMC-SpaBoard/pkg/validator"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type recordingMetrics struct {
	transitions []string
}

func (m *recordingMetrics) StatusTransition(from, to string) {
	m.transitions = append(m.transitions, from+"->"+to)
}

var (
	admin        = &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}
	receptionist = &domain.User{ID: 2, Username: "letan", Role: domain.RoleReceptionist, BranchIDs: []int64{1}}
)

type fixture struct {
	svc          *Service
	beds         *bedRepo.Repository
	appointments *appointmentRepo.Repository
	metrics      *recordingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	beds := bedRepo.NewRepository(bedRepo.DefaultSeed())
	appointments := appointmentRepo.NewRepository()
	require.NoError(t, appointments.ImportAssignments(context.Background(), bedRepo.DefaultSeed()))

	metrics := &recordingMetrics{}
	svc := NewService(beds, appointments, metrics, logger.NewNop())
	svc.timeProvider = fixedTime{t: time.Date(2026, 10, 17, 11, 20, 0, 0, time.UTC)}

	return &fixture{svc: svc, beds: beds, appointments: appointments, metrics: metrics}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.svc.Create(ctx, admin, &models.BedRequest{
		Name:      "Giường Massage 3",
		Room:      "Phòng Massage A",
		BranchID:  1,
		Equipment: []string{"Tinh dầu"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.ID)
	assert.Equal(t, "available", resp.Status)
	assert.Equal(t, "massage", resp.Type)
	assert.Equal(t, "11:20", resp.LastCleaned)
	assert.Nil(t, resp.Assignment)
	assert.Equal(t, []string{"start_use"}, resp.AvailableActions)

	t.Run("blank name", func(t *testing.T) {
		_, err := f.svc.Create(ctx, admin, &models.BedRequest{Name: "  ", BranchID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)

		var fieldsErr *validator.FieldsError
		require.True(t, errors.As(err, &fieldsErr))
		assert.Contains(t, fieldsErr.Fields, "name")
	})

	t.Run("foreign branch", func(t *testing.T) {
		_, err := f.svc.Create(ctx, receptionist, &models.BedRequest{Name: "Giường X", BranchID: 2})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_CreateInEmptyRegistry(t *testing.T) {
	svc := NewService(bedRepo.NewRepository(nil), appointmentRepo.NewRepository(), &recordingMetrics{}, logger.NewNop())

	resp, err := svc.Create(context.Background(), admin, &models.BedRequest{Name: "Giường 1", BranchID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestService_UpdateKeepsStatusAndAssignment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.svc.Update(ctx, admin, 1, &models.BedRequest{
		Name:     "Giường Massage 1 (mới)",
		Room:     "Phòng Massage A",
		BranchID: 1,
		Type:     "vip",
	})
	require.NoError(t, err)
	assert.Equal(t, "Giường Massage 1 (mới)", resp.Name)
	assert.Equal(t, "vip", resp.Type)
	assert.Equal(t, "occupied", resp.Status)
	require.NotNil(t, resp.Assignment)
	assert.Equal(t, "seed-1", resp.Assignment.AppointmentID)

	_, err = f.svc.Update(ctx, admin, 99, &models.BedRequest{Name: "X", BranchID: 1})
	assert.ErrorIs(t, err, ErrBedNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.svc.Delete(ctx, admin, 1))

	_, err := f.svc.Get(ctx, admin, 1)
	assert.ErrorIs(t, err, ErrBedNotFound)

	record, err := f.appointments.GetByID(ctx, "seed-1")
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentCancelled, record.Status)

	assert.ErrorIs(t, f.svc.Delete(ctx, admin, 1), ErrBedNotFound)
}

func TestService_SetStatus(t *testing.T) {
	tests := []struct {
		name    string
		bedID   int64
		status  string
		want    string
		wantErr error
	}{
		{name: "finish cleaning", bedID: 3, status: "available", want: "available"},
		{name: "finish maintenance", bedID: 5, status: "available", want: "available"},
		{name: "occupied without assignment", bedID: 4, status: "occupied", wantErr: ErrInvalidTransition},
		{name: "leave occupied directly", bedID: 1, status: "cleaning", wantErr: ErrInvalidTransition},
		{name: "available to maintenance", bedID: 4, status: "maintenance", wantErr: ErrInvalidTransition},
		{name: "cleaning to occupied", bedID: 3, status: "occupied", wantErr: ErrInvalidTransition},
		{name: "unknown status", bedID: 4, status: "broken", wantErr: ErrInvalidInput},
		{name: "missing bed", bedID: 42, status: "available", wantErr: ErrBedNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)

			resp, err := f.svc.SetStatus(ctx, admin, tt.bedID, &models.SetStatusRequest{Status: tt.status})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.metrics.transitions)

				bed, getErr := f.beds.GetByID(ctx, tt.bedID)
				if getErr == nil {
					assert.True(t, bed.IsConsistent())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Status)
			assert.Len(t, f.metrics.transitions, 1)
		})
	}
}

func TestService_ListAndStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	all, err := f.svc.List(ctx, admin, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, all.Total)
	for i := 1; i < len(all.Beds); i++ {
		assert.Less(t, all.Beds[i-1].ID, all.Beds[i].ID)
	}

	scoped, err := f.svc.List(ctx, receptionist, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, scoped.Total)

	available, err := f.svc.List(ctx, admin, &models.ListBedsRequest{Status: ptr.Ptr("available")})
	require.NoError(t, err)
	assert.Equal(t, 3, available.Total)

	_, err = f.svc.List(ctx, admin, &models.ListBedsRequest{Type: ptr.Ptr("sauna")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	stats, err := f.svc.Stats(ctx, receptionist, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, map[string]int{"available": 2, "occupied": 1, "cleaning": 1, "maintenance": 1}, stats.ByStatus)

	_, err = f.svc.Get(ctx, receptionist, 6)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
