package domain

import "github.com/m04kA/SMC-SpaBoard/pkg/types"

// Slot is one fixed-duration cell of a bed's daily grid
type Slot struct {
	Index    int
	Start    types.TimeOfDay
	End      types.TimeOfDay
	Occupied bool // slot start falls within the assignment
	First    bool // first occupied slot, the assignment block is drawn here
}

// RemainingState tells whether an assignment is still running
type RemainingState string

const (
	RemainingOnTime  RemainingState = "remaining"
	RemainingOverdue RemainingState = "overdue"
)

// Remaining describes time left until an assignment's estimated end.
// Overdue assignments report State=overdue and zero minutes, never a negative value.
type Remaining struct {
	State   RemainingState
	Minutes int
}

// IsOverdue returns true if the estimated end has passed
func (r Remaining) IsOverdue() bool {
	return r.State == RemainingOverdue
}
