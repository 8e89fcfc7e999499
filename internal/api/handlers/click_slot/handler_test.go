package click_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	clickSlot "github.com/m04kA/SMC-SpaBoard/internal/usecase/click_slot"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

type stubUseCase struct {
	got  *clickSlot.Request
	resp *clickSlot.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *clickSlot.Request) (*clickSlot.Response, error) {
	s.got = req
	return s.resp, s.err
}

var receptionist = &domain.User{ID: 3, Role: domain.RoleReceptionist, BranchIDs: []int64{1}}

func request(bedID, slot string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/beds/"+bedID+"/slots/"+slot+"/click", nil)
	req = mux.SetURLVars(req, map[string]string{"bedId": bedID, "slot": slot})
	return req.WithContext(middleware.WithUser(req.Context(), receptionist))
}

func TestHandle_OpenBooking(t *testing.T) {
	bedID := int64(4)
	uc := &stubUseCase{resp: &clickSlot.Response{
		Action: clickSlot.ActionOpenBooking,
		Slot:   domain.Slot{Index: 1, Start: types.MustTimeOfDay("09:00"), End: types.MustTimeOfDay("10:00")},
		Draft:  &domain.AppointmentData{BedID: &bedID, BedName: "Giường Chăm sóc da 2", StartTime: types.MustTimeOfDay("09:00")},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("4", "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var body ClickResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "open_booking", body.Action)
	assert.Equal(t, "09:00", body.Slot.Start)
	require.NotNil(t, body.Draft)
	assert.Equal(t, "09:00", body.Draft.StartTime.String())
	assert.Empty(t, body.Notice)

	assert.Equal(t, int64(4), uc.got.BedID)
	assert.Equal(t, 1, uc.got.SlotIndex)
}

func TestHandle_Notice(t *testing.T) {
	uc := &stubUseCase{resp: &clickSlot.Response{
		Action: clickSlot.ActionNotice,
		Slot:   domain.Slot{Index: 1, Start: types.MustTimeOfDay("09:00"), End: types.MustTimeOfDay("10:00")},
		Notice: "Phòng VIP 1 đang bảo trì",
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("5", "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var body ClickResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "notice", body.Action)
	assert.Nil(t, body.Draft)
	assert.Equal(t, "Phòng VIP 1 đang bảo trì", body.Notice)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		bedID      string
		slot       string
		err        error
		wantStatus int
	}{
		{name: "bad bed id", bedID: "x", slot: "1", wantStatus: http.StatusBadRequest},
		{name: "bad slot", bedID: "4", slot: "first", wantStatus: http.StatusBadRequest},
		{name: "slot out of range", bedID: "4", slot: "40", err: clickSlot.ErrSlotOutOfRange, wantStatus: http.StatusBadRequest},
		{name: "not found", bedID: "99", slot: "1", err: clickSlot.ErrBedNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign branch", bedID: "6", slot: "1", err: clickSlot.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", bedID: "4", slot: "1", err: clickSlot.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, request(tt.bedID, tt.slot))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
