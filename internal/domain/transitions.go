package domain

// BedAction is a status action offered on the board for a bed
type BedAction string

const (
	ActionStartUse          BedAction = "start_use"
	ActionCompleteService   BedAction = "complete_service"
	ActionFinishCleaning    BedAction = "finish_cleaning"
	ActionFinishMaintenance BedAction = "finish_maintenance"
)

// allowedTransitions is the bed status state machine. There is no terminal state.
var allowedTransitions = map[BedStatus][]BedStatus{
	BedStatusAvailable:   {BedStatusOccupied},
	BedStatusOccupied:    {BedStatusCleaning},
	BedStatusCleaning:    {BedStatusAvailable},
	BedStatusMaintenance: {BedStatusAvailable},
}

// CanTransition returns true if the state machine allows from -> to
func CanTransition(from, to BedStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AvailableActions returns the actions displayed for a bed in the given status
func AvailableActions(status BedStatus) []BedAction {
	switch status {
	case BedStatusAvailable:
		return []BedAction{ActionStartUse}
	case BedStatusOccupied:
		return []BedAction{ActionCompleteService}
	case BedStatusCleaning:
		return []BedAction{ActionFinishCleaning}
	case BedStatusMaintenance:
		return []BedAction{ActionFinishMaintenance}
	default:
		return nil
	}
}
