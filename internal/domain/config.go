package domain

import (
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

// GridConfig describes the daily scheduling grid of the board
type GridConfig struct {
	Start               types.TimeOfDay
	SlotCount           int
	SlotDurationMinutes int
	SlotPixelHeight     int
	GapPixels           int
	MinHeightPixels     int
}

// DefaultGridConfig returns the 08:00-19:00 hourly grid
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Start:               types.TimeOfDay(DefaultGridStartMinutes),
		SlotCount:           DefaultGridSlotCount,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		SlotPixelHeight:     DefaultSlotPixelHeight,
		GapPixels:           DefaultGapPixels,
		MinHeightPixels:     DefaultMinHeightPixels,
	}
}

// End returns the end of the last slot
func (g GridConfig) End() types.TimeOfDay {
	return g.Start + types.TimeOfDay(g.SlotCount*g.SlotDurationMinutes)
}

// Validate checks that the grid fits inside one day
func (g GridConfig) Validate() error {
	if !g.Start.Valid() {
		return fmt.Errorf("grid start %d is out of range", g.Start)
	}
	if g.SlotCount < 1 {
		return fmt.Errorf("grid slot count must be positive, got %d", g.SlotCount)
	}
	if g.SlotDurationMinutes < MinSlotDurationMinutes || g.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("slot duration must be within [%d, %d], got %d",
			MinSlotDurationMinutes, MaxSlotDurationMinutes, g.SlotDurationMinutes)
	}
	if g.End().Minutes() > types.MinutesPerDay {
		return fmt.Errorf("grid %s + %dx%d min exceeds one day", g.Start, g.SlotCount, g.SlotDurationMinutes)
	}
	if g.SlotPixelHeight <= 0 || g.MinHeightPixels < 0 || g.GapPixels < 0 {
		return fmt.Errorf("grid pixel sizes must be non-negative")
	}
	return nil
}
