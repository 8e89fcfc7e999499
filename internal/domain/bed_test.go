package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SpaBoard/pkg/ptr"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]BedStatus]bool{
		{BedStatusAvailable, BedStatusOccupied}:    true,
		{BedStatusOccupied, BedStatusCleaning}:     true,
		{BedStatusCleaning, BedStatusAvailable}:    true,
		{BedStatusMaintenance, BedStatusAvailable}: true,
	}

	for _, from := range AllBedStatuses {
		for _, to := range AllBedStatuses {
			assert.Equal(t, allowed[[2]BedStatus{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestAvailableActions(t *testing.T) {
	assert.Equal(t, []BedAction{ActionStartUse}, AvailableActions(BedStatusAvailable))
	assert.Equal(t, []BedAction{ActionCompleteService}, AvailableActions(BedStatusOccupied))
	assert.Equal(t, []BedAction{ActionFinishCleaning}, AvailableActions(BedStatusCleaning))
	assert.Equal(t, []BedAction{ActionFinishMaintenance}, AvailableActions(BedStatusMaintenance))
	assert.Nil(t, AvailableActions(BedStatus("broken")))
}

func TestBed_CloneIsDeep(t *testing.T) {
	bed := &Bed{
		ID:        1,
		Name:      "Giường Massage 1",
		Status:    BedStatusOccupied,
		Equipment: []string{"Đá nóng"},
		Assignment: &Assignment{
			CustomerID:       ptr.Ptr(int64(7)),
			StartTime:        types.MustTimeOfDay("09:30"),
			EstimatedEndTime: types.MustTimeOfDay("10:30"),
		},
	}

	clone := bed.Clone()
	clone.Equipment[0] = "changed"
	clone.Assignment.CustomerName = "changed"
	*clone.Assignment.CustomerID = 99

	assert.Equal(t, "Đá nóng", bed.Equipment[0])
	assert.Empty(t, bed.Assignment.CustomerName)
	assert.Equal(t, int64(7), *bed.Assignment.CustomerID)
	assert.True(t, bed.IsConsistent())
}

func TestAssignment_Covers(t *testing.T) {
	a := &Assignment{
		StartTime:        types.MustTimeOfDay("09:00"),
		EstimatedEndTime: types.MustTimeOfDay("10:30"),
	}

	assert.True(t, a.Covers(types.MustTimeOfDay("09:00")))
	assert.True(t, a.Covers(types.MustTimeOfDay("10:00")))
	assert.False(t, a.Covers(types.MustTimeOfDay("10:30")))
	assert.False(t, a.Covers(types.MustTimeOfDay("08:00")))
	assert.Equal(t, 90, a.DurationMinutes())
}

func TestBedFilter_Matches(t *testing.T) {
	bed := &Bed{ID: 1, BranchID: 2, Status: BedStatusCleaning, Type: BedTypeVIP}

	assert.True(t, BedFilter{}.Matches(bed))
	assert.True(t, BedFilter{BranchIDs: []int64{1, 2}}.Matches(bed))
	assert.False(t, BedFilter{BranchIDs: []int64{}}.Matches(bed))
	assert.False(t, BedFilter{BranchID: ptr.Ptr(int64(1))}.Matches(bed))
	assert.True(t, BedFilter{Status: ptr.Ptr(BedStatusCleaning), Type: ptr.Ptr(BedTypeVIP)}.Matches(bed))
	assert.False(t, BedFilter{Status: ptr.Ptr(BedStatusAvailable)}.Matches(bed))
}

func TestDraftRoundTrip(t *testing.T) {
	draft := &AppointmentData{
		CustomerID:    ptr.Ptr(int64(3)),
		CustomerName:  "Lê Văn C",
		CustomerPhone: "0903456789",
		Service:       "Massage body",
		Staff:         "Nguyễn Thị Lan",
		StartTime:     types.MustTimeOfDay("14:00"),
		EndTime:       types.MustTimeOfDay("15:30"),
		Notes:         "Dị ứng tinh dầu bạc hà",
	}
	bed := &Bed{ID: 2, Name: "Giường Massage 2", Assignment: draft.ToAssignment("apt-1", AssignmentPreparing)}

	loaded := DraftFromAssignment(bed)

	assert.Equal(t, draft.CustomerID, loaded.CustomerID)
	assert.Equal(t, draft.CustomerName, loaded.CustomerName)
	assert.Equal(t, draft.CustomerPhone, loaded.CustomerPhone)
	assert.Equal(t, draft.Service, loaded.Service)
	assert.Equal(t, draft.Staff, loaded.Staff)
	assert.Equal(t, draft.StartTime, loaded.StartTime)
	assert.Equal(t, draft.EndTime, loaded.EndTime)
	assert.Equal(t, draft.Notes, loaded.Notes)
	assert.Equal(t, int64(2), *loaded.BedID)
}
