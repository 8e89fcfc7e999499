package domain

import (
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

// BedType represents the physical type of a treatment bed
type BedType string

const (
	BedTypeMassage BedType = "massage"
	BedTypeFacial  BedType = "facial"
	BedTypeBody    BedType = "body"
	BedTypeVIP     BedType = "vip"
)

// IsValid returns true if the bed type is one of the known types
func (t BedType) IsValid() bool {
	switch t {
	case BedTypeMassage, BedTypeFacial, BedTypeBody, BedTypeVIP:
		return true
	}
	return false
}

// BedStatus represents the operating status of a bed
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "available"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusCleaning    BedStatus = "cleaning"
	BedStatusMaintenance BedStatus = "maintenance"
)

// IsValid returns true if the status is one of the known statuses
func (s BedStatus) IsValid() bool {
	switch s {
	case BedStatusAvailable, BedStatusOccupied, BedStatusCleaning, BedStatusMaintenance:
		return true
	}
	return false
}

// Label returns the human readable status shown on the board
func (s BedStatus) Label() string {
	if label, ok := bedStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

var bedStatusLabels = map[BedStatus]string{
	BedStatusAvailable:   "sẵn sàng",
	BedStatusOccupied:    "đang sử dụng",
	BedStatusCleaning:    "đang dọn dẹp",
	BedStatusMaintenance: "đang bảo trì",
}

// AllBedStatuses lists statuses in board order
var AllBedStatuses = []BedStatus{
	BedStatusAvailable,
	BedStatusOccupied,
	BedStatusCleaning,
	BedStatusMaintenance,
}

// AssignmentStatus is the presentational sub-status of an assignment.
// Bed status governs availability; this field never does.
type AssignmentStatus string

const (
	AssignmentPreparing  AssignmentStatus = "preparing"
	AssignmentInProgress AssignmentStatus = "in-progress"
	AssignmentCleaning   AssignmentStatus = "cleaning"
)

// Assignment is the service currently booked on a bed
type Assignment struct {
	AppointmentID    string
	CustomerID       *int64
	CustomerName     string
	CustomerPhone    string
	Service          string
	Staff            string
	StartTime        types.TimeOfDay
	EstimatedEndTime types.TimeOfDay
	Status           AssignmentStatus
	Notes            string
}

// DurationMinutes returns the planned length of the assignment
func (a *Assignment) DurationMinutes() int {
	return a.EstimatedEndTime.Sub(a.StartTime)
}

// Covers returns true if t falls within [StartTime, EstimatedEndTime)
func (a *Assignment) Covers(t types.TimeOfDay) bool {
	return !t.IsBefore(a.StartTime) && t.IsBefore(a.EstimatedEndTime)
}

// Bed represents a treatment bed (or room) that can be booked
type Bed struct {
	ID          int64
	Name        string
	Room        string
	BranchID    int64
	Type        BedType
	Status      BedStatus
	Equipment   []string
	LastCleaned types.TimeOfDay
	Assignment  *Assignment
}

// IsAvailable returns true if the bed can accept a new booking
func (b *Bed) IsAvailable() bool {
	return b.Status == BedStatusAvailable
}

// HasAssignment returns true if the bed currently carries an assignment
func (b *Bed) HasAssignment() bool {
	return b.Assignment != nil
}

// IsConsistent checks the occupied <=> assignment invariant
func (b *Bed) IsConsistent() bool {
	return (b.Status == BedStatusOccupied) == (b.Assignment != nil)
}

// Clone returns a deep copy of the bed
func (b *Bed) Clone() *Bed {
	if b == nil {
		return nil
	}
	clone := *b
	if b.Equipment != nil {
		clone.Equipment = append([]string(nil), b.Equipment...)
	}
	if b.Assignment != nil {
		assignment := *b.Assignment
		if b.Assignment.CustomerID != nil {
			id := *b.Assignment.CustomerID
			assignment.CustomerID = &id
		}
		clone.Assignment = &assignment
	}
	return &clone
}

// BedSpec carries the admin-editable attributes of a bed
type BedSpec struct {
	Name      string
	Room      string
	BranchID  int64
	Type      BedType
	Equipment []string
}

// BedFilter filters the bed list. Nil fields match everything.
type BedFilter struct {
	BranchIDs []int64 // nil = all branches, empty = none
	BranchID  *int64
	Status    *BedStatus
	Type      *BedType
}

// Matches returns true if the bed satisfies the filter
func (f BedFilter) Matches(b *Bed) bool {
	if f.BranchID != nil && b.BranchID != *f.BranchID {
		return false
	}
	if f.BranchIDs != nil && !containsID(f.BranchIDs, b.BranchID) {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.Type != nil && b.Type != *f.Type {
		return false
	}
	return true
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
