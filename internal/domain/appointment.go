package domain

import (
	"time"

	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

// AppointmentData is the booking form draft. It lives only while the form is open:
// saving turns it into an Assignment, cancelling discards it.
type AppointmentData struct {
	CustomerID    *int64          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName" validate:"notblank,max=100"`
	CustomerPhone string          `json:"customerPhone" validate:"max=20"`
	Service       string          `json:"service" validate:"notblank"`
	Staff         string          `json:"staff"`
	BedID         *int64          `json:"bedId,omitempty"`
	BedName       string          `json:"bedName"`
	StartTime     types.TimeOfDay `json:"startTime"`
	EndTime       types.TimeOfDay `json:"endTime"`
	Notes         string          `json:"notes" validate:"max=500"`
}

// ToAssignment builds an assignment from the draft
func (d *AppointmentData) ToAssignment(appointmentID string, status AssignmentStatus) *Assignment {
	var customerID *int64
	if d.CustomerID != nil {
		id := *d.CustomerID
		customerID = &id
	}
	return &Assignment{
		AppointmentID:    appointmentID,
		CustomerID:       customerID,
		CustomerName:     d.CustomerName,
		CustomerPhone:    d.CustomerPhone,
		Service:          d.Service,
		Staff:            d.Staff,
		StartTime:        d.StartTime,
		EstimatedEndTime: d.EndTime,
		Status:           status,
		Notes:            d.Notes,
	}
}

// DraftFromAssignment loads an assignment back into an editable draft
func DraftFromAssignment(bed *Bed) *AppointmentData {
	a := bed.Assignment
	bedID := bed.ID
	draft := &AppointmentData{
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		Service:       a.Service,
		Staff:         a.Staff,
		BedID:         &bedID,
		BedName:       bed.Name,
		StartTime:     a.StartTime,
		EndTime:       a.EstimatedEndTime,
		Notes:         a.Notes,
	}
	if a.CustomerID != nil {
		id := *a.CustomerID
		draft.CustomerID = &id
	}
	return draft
}

// AppointmentStatus is the lifecycle status of a booking record
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is the booking record correlated with an assignment by AppointmentID
type Appointment struct {
	ID           string
	BedID        int64
	BedName      string
	BranchID     int64
	CustomerID   *int64
	CustomerName string
	Service      string
	Staff        string
	StartTime    types.TimeOfDay
	EndTime      types.TimeOfDay
	Status       AppointmentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AppointmentFilter filters booking records. Nil fields match everything.
type AppointmentFilter struct {
	BranchIDs []int64 // nil = all branches, empty = none
	BedID     *int64
	Status    *AppointmentStatus
}

// Matches returns true if the record satisfies the filter
func (f AppointmentFilter) Matches(a *Appointment) bool {
	if f.BranchIDs != nil && !containsID(f.BranchIDs, a.BranchID) {
		return false
	}
	if f.BedID != nil && a.BedID != *f.BedID {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	return true
}
