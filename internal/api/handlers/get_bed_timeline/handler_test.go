package get_bed_timeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	getBedTimeline "github.com/m04kA/SMC-SpaBoard/internal/usecase/get_bed_timeline"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

type stubUseCase struct {
	got  *getBedTimeline.Request
	resp *getBedTimeline.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getBedTimeline.Request) (*getBedTimeline.Response, error) {
	s.got = req
	return s.resp, s.err
}

var manager = &domain.User{ID: 2, Username: "quanly", Role: domain.RoleManager, BranchIDs: []int64{1, 2}}

func request(bedID, query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/beds/"+bedID+"/timeline"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"bedId": bedID})
	return req.WithContext(middleware.WithUser(req.Context(), manager))
}

func sampleResponse() *getBedTimeline.Response {
	first := 1
	bed := &domain.Bed{
		ID: 1, Name: "Giường 1", BranchID: 1, Type: domain.BedTypeMassage, Status: domain.BedStatusOccupied,
		Assignment: &domain.Assignment{
			AppointmentID:    "a-1",
			CustomerName:     "Trần Thị Mai",
			Service:          "Massage body",
			StartTime:        types.MustTimeOfDay("10:00"),
			EstimatedEndTime: types.MustTimeOfDay("11:30"),
			Status:           domain.AssignmentInProgress,
		},
	}
	return &getBedTimeline.Response{
		Bed:  bed,
		Date: time.Date(2026, 10, 17, 0, 0, 0, 0, time.Local),
		Now:  types.MustTimeOfDay("10:15"),
		Slots: []domain.Slot{
			{Index: 0, Start: types.MustTimeOfDay("09:00"), End: types.MustTimeOfDay("10:00")},
			{Index: 1, Start: types.MustTimeOfDay("10:00"), End: types.MustTimeOfDay("11:00"), Occupied: true, First: true},
			{Index: 2, Start: types.MustTimeOfDay("11:00"), End: types.MustTimeOfDay("12:00"), Occupied: true},
		},
		Assignment: &getBedTimeline.AssignmentBlock{
			Assignment:   bed.Assignment,
			FirstSlot:    &first,
			HeightPixels: 120,
			Remaining:    &domain.Remaining{State: domain.RemainingOnTime, Minutes: 75},
		},
	}
}

func TestHandle_Timeline(t *testing.T) {
	uc := &stubUseCase{resp: sampleResponse()}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("1", "?date=2026-10-17"))

	require.Equal(t, http.StatusOK, rec.Code)
	var body TimelineResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "2026-10-17", body.Date)
	assert.Equal(t, "10:15", body.Now)
	require.Len(t, body.Slots, 3)
	assert.True(t, body.Slots[1].First)
	assert.Equal(t, "11:00", body.Slots[1].End)
	require.NotNil(t, body.Assignment)
	require.NotNil(t, body.Assignment.FirstSlot)
	assert.Equal(t, 1, *body.Assignment.FirstSlot)
	assert.Equal(t, 120, body.Assignment.HeightPixels)
	require.NotNil(t, body.Assignment.Remaining)
	assert.Equal(t, RemainingResponse{State: "remaining", Minutes: 75}, *body.Assignment.Remaining)
	assert.Equal(t, 90, body.Assignment.Assignment.DurationMinutes)

	require.NotNil(t, uc.got.Date)
	assert.Equal(t, 17, uc.got.Date.Day())
	assert.Equal(t, int64(1), uc.got.BedID)
}

func TestHandle_DefaultsToToday(t *testing.T) {
	uc := &stubUseCase{resp: sampleResponse()}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("1", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Date)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		bedID      string
		query      string
		err        error
		wantStatus int
	}{
		{name: "bad date", bedID: "1", query: "?date=17.10.2026", wantStatus: http.StatusBadRequest},
		{name: "bad bed id", bedID: "abc", wantStatus: http.StatusBadRequest},
		{name: "not found", bedID: "99", err: getBedTimeline.ErrBedNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign branch", bedID: "5", err: getBedTimeline.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", bedID: "1", err: getBedTimeline.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, request(tt.bedID, tt.query))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
