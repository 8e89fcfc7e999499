package schedule

import (
	"errors"
	"fmt"
	"iter"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

var (
	// ErrCrossesMidnight is returned when a service would end after 23:59
	ErrCrossesMidnight = errors.New("schedule: end time crosses midnight")

	// ErrInvalidDuration is returned for non-positive service durations
	ErrInvalidDuration = errors.New("schedule: duration must be positive")
)

// Slots returns the lazy sequence of grid slots for a bed.
// The sequence is restartable and does not mutate the bed.
func Slots(grid domain.GridConfig, bed *domain.Bed) iter.Seq[domain.Slot] {
	return func(yield func(domain.Slot) bool) {
		firstSeen := false
		for i := 0; i < grid.SlotCount; i++ {
			start := grid.Start + types.TimeOfDay(i*grid.SlotDurationMinutes)
			slot := domain.Slot{
				Index: i,
				Start: start,
				End:   start + types.TimeOfDay(grid.SlotDurationMinutes),
			}
			if bed != nil && bed.Assignment != nil && bed.Assignment.Covers(start) {
				slot.Occupied = true
				slot.First = !firstSeen
				firstSeen = true
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// SlotAt returns the slot with the given index
func SlotAt(grid domain.GridConfig, bed *domain.Bed, index int) (domain.Slot, bool) {
	if index < 0 || index >= grid.SlotCount {
		return domain.Slot{}, false
	}
	for slot := range Slots(grid, bed) {
		if slot.Index == index {
			return slot, true
		}
	}
	return domain.Slot{}, false
}

// VisualHeight returns the pixel height of an assignment block:
// max(duration/60 * slotPx - gap, minHeight). Negative durations count as zero.
// The proportional part is rounded down to whole pixels (45 min at 50 px gives 37, not 37.5).
func VisualHeight(start, end types.TimeOfDay, slotPixelHeight, gapPixels, minHeightPixels int) int {
	duration := end.Sub(start)
	if duration < 0 {
		duration = 0
	}
	height := duration*slotPixelHeight/60 - gapPixels
	if height < minHeightPixels {
		return minHeightPixels
	}
	return height
}

// RemainingUntil reports the time left until end. When end <= now the result is overdue
// with zero minutes instead of a negative duration.
func RemainingUntil(now, end types.TimeOfDay) domain.Remaining {
	if !now.IsBefore(end) {
		return domain.Remaining{State: domain.RemainingOverdue}
	}
	return domain.Remaining{State: domain.RemainingOnTime, Minutes: end.Sub(now)}
}

// DeriveEndTime computes start + durationMinutes. Results past 23:59 are rejected, not rolled over.
func DeriveEndTime(start types.TimeOfDay, durationMinutes int) (types.TimeOfDay, error) {
	if durationMinutes <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return 0, fmt.Errorf("%w: %s + %d min", ErrCrossesMidnight, start, durationMinutes)
	}
	return end, nil
}
